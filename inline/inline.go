// Package inline is the non-interactive mode for scripts: every URL is looked up,
// resolved and printed without prompting.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tubegrab/tubegrab/log"
)

// Run processes every URL in order. In plain mode the first failure stops the run;
// in JSON mode failures are reported per entry.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	entries := make([]*Entry, 0, len(options.URLs))
	for _, u := range options.URLs {
		entry, err := process(ctx, u, options)
		if err != nil {
			if !options.Json {
				return fmt.Errorf("%s: %w", u, err)
			}
			entry.Error = newFailure(err)
		}
		entries = append(entries, entry)

		if !options.Json {
			printPlain(options.Out, entry, options.InfoOnly)
		}
	}

	if options.Json {
		return writeJson(options.Out, entries, options)
	}
	return nil
}

func process(ctx context.Context, raw string, options *Options) (*Entry, error) {
	entry := &Entry{Input: raw}

	found, err := options.Service.Lookup(ctx, raw)
	if err != nil {
		return entry, err
	}

	meta := found.Metadata
	entry.ID = found.ID.String()
	entry.Title = meta.DisplayTitle()
	entry.Author = meta.DisplayAuthor()
	entry.Thumbnail = meta.Thumbnail.OrEmpty()

	if options.InfoOnly {
		return entry, nil
	}

	variant, err := options.Service.Resolve(ctx, raw, options.Quality)
	if err != nil {
		return entry, err
	}
	entry.Variant = &variant

	if options.OnSelected != nil {
		options.OnSelected(found.ID, meta, options.Quality, variant)
	}

	if open, ok := options.Open.Get(); ok {
		if err := open(variant.URL); err != nil {
			log.Error(err)
			return entry, fmt.Errorf("could not open the download link: %w", err)
		}
		entry.Opened = true
	}

	return entry, nil
}

func printPlain(out io.Writer, entry *Entry, infoOnly bool) {
	if infoOnly {
		_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", entry.ID, entry.Title, entry.Author)
		return
	}
	if entry.Variant != nil {
		_, _ = fmt.Fprintln(out, entry.Variant.URL)
	}
}

func writeJson(out io.Writer, entries []*Entry, options *Options) error {
	data, err := asJson(entries, options.Quality)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
