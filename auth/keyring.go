// Package auth keeps the video API key in the system keyring.
package auth

import (
	"errors"

	"github.com/tubegrab/tubegrab/constant"
	"github.com/zalando/go-keyring"
)

const user = "rapidapi-key"

var service = constant.App

// SetKey stores the API key.
func SetKey(key string) error {
	return keyring.Set(service, user, key)
}

// GetKey returns the stored API key.
func GetKey() (string, error) {
	return keyring.Get(service, user)
}

// DeleteKey removes the stored API key. Deleting a missing key is not an error.
func DeleteKey() error {
	if err := keyring.Delete(service, user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

// ResolveKey returns configured when set, otherwise the keyring value.
// An unavailable keyring yields an empty key.
func ResolveKey(configured string) string {
	if configured != "" {
		return configured
	}

	key, err := GetKey()
	if err != nil {
		return ""
	}
	return key
}
