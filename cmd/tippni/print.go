package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/normalize"
)

func printProfile(w io.Writer, p *entities.Profile) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush() // nolint:errcheck

	rows := [][2]string{
		{"id", p.ID},
		{"username", "@" + p.Username},
		{"name", p.DisplayName()},
		{"bio", p.Bio},
		{"location", p.Location},
		{"website", p.Website},
		{"verified", fmt.Sprint(p.Verified)},
		{"followers", fmt.Sprint(p.Followers)},
		{"following", fmt.Sprint(p.Followees)},
	}

	for _, r := range rows {
		if r[1] != "" {
			fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1])
		}
	}
}

func printProfileLine(w io.Writer, p *entities.Profile) {
	mark := ""
	if p.Verified {
		mark = " ✓"
	}

	fmt.Fprintf(w, "%s\t@%s\t%s%s\n", p.ID, p.Username, p.DisplayName(), mark)
}

func printConnections(w io.Writer, list []normalize.Connection) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush() // nolint:errcheck

	for _, c := range list {
		state := "follow"
		if c.IsFollowing {
			state = "following"
		}
		fmt.Fprintf(tw, "%s\t@%s\t%s\t%s\n", c.Profile.ID, c.Profile.Username, c.Profile.DisplayName(), state)
	}
}

func printPosts(w io.Writer, posts []entities.PostView) {
	for _, p := range posts {
		if p.RepostedBy != nil {
			fmt.Fprintf(w, "↻ %s reposted\n", p.RepostedBy.DisplayName())
		}

		author := "unknown"
		if p.Author != nil {
			author = fmt.Sprintf("%s @%s", p.Author.DisplayName(), p.Author.Username)
		}

		fmt.Fprintf(w, "[%s] %s", p.ID, author)
		if !p.CreatedAt.IsZero() {
			fmt.Fprintf(w, " · %s", p.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintln(w)

		if p.ReplyToID != "" {
			fmt.Fprintf(w, "  replying to %s\n", p.ReplyToID)
		}
		if p.Text != "" {
			fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(p.Text, "\n", "\n  "))
		}
		for _, m := range p.Media {
			fmt.Fprintf(w, "  media: %s\n", m)
		}

		fmt.Fprintf(w, "  ♥ %d%s  ↻ %d%s", p.Likes.Count, mark(p.Likes.Active), p.Reposts.Count, mark(p.Reposts.Active))
		if p.IsBelongs {
			fmt.Fprint(w, "  (yours)")
		}
		fmt.Fprint(w, "\n\n")
	}
}

func mark(active bool) string {
	if active {
		return "*"
	}
	return ""
}
