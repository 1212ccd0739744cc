package main

import (
	"context"
	"fmt"
	"io"

	"github.com/itchan-dev/hackorsnooze/frontend/internal/model"
	"github.com/itchan-dev/hackorsnooze/shared/domain"
)

type command struct {
	usage string
	args  int
	run   func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"stories": {"stories", 0, func(ctx context.Context, a *app, args []string) error {
		a.printStories(a.session.Stories.Stories())
		return nil
	}},
	"favorites": {"favorites", 0, func(ctx context.Context, a *app, args []string) error {
		user, err := a.user()
		if err != nil {
			return err
		}
		a.printStories(user.Favorites())
		return nil
	}},
	"mine": {"mine", 0, func(ctx context.Context, a *app, args []string) error {
		user, err := a.user()
		if err != nil {
			return err
		}
		a.printStories(user.OwnStories())
		return nil
	}},
	"signup": {"signup <username> <password> <name>", 3, func(ctx context.Context, a *app, args []string) error {
		data := domain.SignupData{Credentials: domain.Credentials{Username: args[0], Password: args[1]}, Name: args[2]}
		if err := a.session.Signup(ctx, data); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Signed up as %s\n", a.session.User.Username)
		return nil
	}},
	"login": {"login <username> <password>", 2, func(ctx context.Context, a *app, args []string) error {
		if err := a.session.Login(ctx, domain.Credentials{Username: args[0], Password: args[1]}); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Logged in as %s\n", a.session.User.Username)
		return nil
	}},
	"logout": {"logout", 0, func(ctx context.Context, a *app, args []string) error {
		a.session.Logout()
		fmt.Fprintln(a.out, "Logged out")
		return nil
	}},
	"submit": {"submit <title> <author> <url>", 3, func(ctx context.Context, a *app, args []string) error {
		story, err := a.session.Submit(ctx, domain.NewStory{Title: args[0], Author: args[1], Url: args[2]})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Posted %s\n", story.StoryId)
		return nil
	}},
	"delete": {"delete <storyId>", 1, func(ctx context.Context, a *app, args []string) error {
		if err := a.session.Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Deleted %s\n", args[0])
		return nil
	}},
	"favorite": {"favorite <storyId>", 1, func(ctx context.Context, a *app, args []string) error {
		favorites, err := a.session.ToggleFavorite(ctx, args[0])
		if err != nil {
			return err
		}
		if domain.IndexOf(favorites, args[0]) >= 0 {
			fmt.Fprintf(a.out, "Favorited %s\n", args[0])
		} else {
			fmt.Fprintf(a.out, "Unfavorited %s\n", args[0])
		}
		return nil
	}},
}

type app struct {
	session *model.Session
	out     io.Writer
}

func (a *app) user() (*model.User, error) {
	if !a.session.Authenticated() {
		return nil, model.ErrNotLoggedIn
	}
	return a.session.User, nil
}

// printStories writes one story per line, starring favorites.
func (a *app) printStories(stories []domain.Story) {
	if len(stories) == 0 {
		fmt.Fprintln(a.out, "No stories")
		return
	}
	for _, s := range stories {
		fmt.Fprintln(a.out, formatStory(s, a.session.User))
	}
}

func formatStory(s domain.Story, user *model.User) string {
	mark := " "
	if user.IsFavorite(s) {
		mark = "*"
	}
	host, err := s.Hostname()
	if err != nil {
		host = "invalid url"
	}
	return fmt.Sprintf("%s %s  %s (%s) by %s, posted by %s", mark, s.StoryId, s.Title, host, s.Author, s.Username)
}
