package mini

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/tubegrab/tubegrab/video"
)

type prompter interface {
	URL(suggest func(string) []string) (string, error)
	Quality(current video.Quality) (video.Quality, error)
	Confirm(message string) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) URL(suggest func(string) []string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{
		Message: "Video URL",
		Help:    "watch, youtu.be, shorts and embed links work. Leave empty and press ctrl+c to quit.",
		Suggest: suggest,
	}, &answer)
	return answer, err
}

func (surveyPrompter) Quality(current video.Quality) (video.Quality, error) {
	labels := lo.Map(video.Qualities, func(q video.Quality, _ int) string {
		return q.Label()
	})

	var idx int
	err := survey.AskOne(&survey.Select{
		Message: "Minimum quality",
		Options: labels,
		Default: current.Label(),
	}, &idx)
	if err != nil {
		return current, err
	}
	return video.Qualities[idx], nil
}

func (surveyPrompter) Confirm(message string) (bool, error) {
	answer := true
	err := survey.AskOne(&survey.Confirm{Message: message, Default: true}, &answer)
	return answer, err
}
