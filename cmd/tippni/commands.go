package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/tippni/tippni/internal/client"
	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/service"
	"github.com/tippni/tippni/internal/validate"
)

func mustAddCommands(p *flags.Parser) {
	commands := []struct {
		name, short string
		data        interface{}
	}{
		{"serve", "run the agent with local API", &serveCommand{}},
		{"login", "sign in and print the session token", &loginCommand{}},
		{"register", "create an account", &registerCommand{}},
		{"activate", "activate an account with the emailed code", &activateCommand{}},
		{"profile", "show my or someone's profile", &profileCommand{}},
		{"connections", "list followers or followees of a profile", &connectionsCommand{}},
		{"follow", "follow a profile", &followCommand{}},
		{"unfollow", "unfollow a profile", &followCommand{undo: true}},
		{"feed", "show home timeline", &feedCommand{}},
		{"posts", "show posts of a profile", &postsCommand{}},
		{"post", "publish a post", &postCommand{}},
		{"like", "like a post", &reactCommand{kind: "like"}},
		{"unlike", "take a like back", &reactCommand{kind: "like", undo: true}},
		{"repost", "repost a post", &reactCommand{kind: "repost"}},
		{"unrepost", "take a repost back", &reactCommand{kind: "repost", undo: true}},
		{"delete", "delete my post", &deleteCommand{}},
		{"search", "search profiles by username", &searchCommand{}},
	}

	for _, c := range commands {
		if _, err := p.AddCommand(c.name, c.short, "", c.data); err != nil {
			logrus.WithError(err).Fatalf("failed to add %s command", c.name)
		}
	}
}

// oneShot runs f against a fresh agent without persistence.
func oneShot(f func(ctx context.Context, a *agent) error) error {
	setupLogging()

	a, err := newAgent(agentOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	return f(context.Background(), a)
}

type idArg struct {
	ID string `positional-arg-name:"id" required:"yes"`
}

type loginCommand struct {
	Email    string `long:"email" required:"yes" description:"account email"`
	Password string `long:"password" env:"TIPPNI_PASSWORD" required:"yes" description:"account password"`
}

func (c *loginCommand) Execute(_ []string) error {
	return oneShot(func(ctx context.Context, a *agent) error {
		if err := a.svc.SignIn(ctx, c.Email, c.Password); err != nil {
			return err
		}

		token, err := a.sess.Token()
		if err != nil {
			return err
		}

		fmt.Println(token)

		return nil
	})
}

// nolint:lll
type registerCommand struct {
	Username        string `long:"username" required:"yes" description:"username"`
	Email           string `long:"email" required:"yes" description:"email"`
	Password        string `long:"password" env:"TIPPNI_PASSWORD" required:"yes" description:"password"`
	ConfirmPassword string `long:"confirm-password" description:"password confirmation, defaults to password"`
	DateOfBirth     string `long:"dob" required:"yes" description:"date of birth, YYYY-MM-DD"`
	Gender          string `long:"gender" required:"yes" description:"gender"`
}

func (c *registerCommand) Execute(_ []string) error {
	return oneShot(func(ctx context.Context, a *agent) error {
		confirm := c.ConfirmPassword
		if confirm == "" {
			confirm = c.Password
		}

		msg, err := a.svc.SignUp(ctx, validate.SignUpForm{
			Username:        c.Username,
			Email:           c.Email,
			Password:        c.Password,
			ConfirmPassword: confirm,
			DateOfBirth:     c.DateOfBirth,
			Gender:          c.Gender,
		})
		if err != nil {
			return err
		}

		fmt.Println(msg)

		return nil
	})
}

type activateCommand struct {
	Args struct {
		Code string `positional-arg-name:"code" required:"yes"`
	} `positional-args:"yes"`
}

func (c *activateCommand) Execute(_ []string) error {
	return oneShot(func(ctx context.Context, a *agent) error {
		return a.svc.Activate(ctx, c.Args.Code)
	})
}

type profileCommand struct {
	Args struct {
		ID string `positional-arg-name:"id" description:"profile id, mine when omitted"`
	} `positional-args:"yes"`
}

func (c *profileCommand) Execute(_ []string) error {
	return oneShot(func(ctx context.Context, a *agent) error {
		var (
			p   *entities.Profile
			err error
		)

		if c.Args.ID == "" {
			p, err = a.svc.FetchMyProfile(ctx)
		} else {
			p, err = a.svc.OpenProfile(ctx, c.Args.ID)
		}
		if err != nil {
			return err
		}

		printProfile(os.Stdout, p)

		return nil
	})
}

type connectionsCommand struct {
	Tab  string `long:"tab" default:"followers" choice:"verified" choice:"followers" choice:"following" description:"list to show"`
	Args idArg  `positional-args:"yes"`
}

func (c *connectionsCommand) Execute(_ []string) error {
	return oneShot(func(ctx context.Context, a *agent) error {
		list, err := a.svc.LoadConnections(ctx, c.Args.ID, service.ConnectionsTab(c.Tab))
		if err != nil {
			return err
		}

		printConnections(os.Stdout, list)

		return nil
	})
}

type followCommand struct {
	undo bool
	Args idArg `positional-args:"yes"`
}

func (c *followCommand) Execute(_ []string) error {
	return oneShot(func(ctx context.Context, a *agent) error {
		if c.undo {
			return a.svc.Unfollow(ctx, c.Args.ID)
		}
		return a.svc.Follow(ctx, c.Args.ID)
	})
}

type feedCommand struct{}

func (c *feedCommand) Execute(_ []string) error {
	return oneShot(func(ctx context.Context, a *agent) error {
		posts, err := a.svc.LoadHomeTimeline(ctx)
		if err != nil {
			return err
		}

		printPosts(os.Stdout, posts)

		return nil
	})
}

type postsCommand struct {
	Tab  string `long:"tab" default:"posts" choice:"posts" choice:"media" choice:"replies" choice:"likes" description:"tab to show"`
	Args idArg  `positional-args:"yes"`
}

func (c *postsCommand) Execute(_ []string) error {
	return oneShot(func(ctx context.Context, a *agent) error {
		posts, err := a.svc.LoadUserPosts(ctx, c.Args.ID, service.PostsTab(c.Tab))
		if err != nil {
			return err
		}

		printPosts(os.Stdout, posts)

		return nil
	})
}

type postCommand struct {
	Text    string   `long:"text" description:"text of the post"`
	ReplyTo string   `long:"reply-to" description:"id of the post to reply to"`
	Files   []string `long:"file" description:"path of media file, may be repeated"`
}

func (c *postCommand) Execute(_ []string) error {
	return oneShot(func(ctx context.Context, a *agent) error {
		files := make([]*client.File, 0, len(c.Files))
		for _, path := range c.Files {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer f.Close() // nolint:errcheck

			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("failed to stat %s: %w", path, err)
			}

			files = append(files, &client.File{
				Name:        filepath.Base(path),
				ContentType: mime.TypeByExtension(filepath.Ext(path)),
				Size:        info.Size(),
				Body:        f,
			})
		}

		p, err := a.svc.CreatePost(ctx, &client.NewPost{
			Text:      c.Text,
			ReplyToID: c.ReplyTo,
			Files:     files,
		})
		if err != nil {
			return err
		}

		if p != nil {
			printPosts(os.Stdout, []entities.PostView{*p})
		}

		return nil
	})
}

// loadPosts fills the store with the posts an action may refer to.
func loadPosts(ctx context.Context, a *agent, user string) error {
	if user != "" {
		_, err := a.svc.LoadUserPosts(ctx, user, service.PostsPostsTab)
		return err
	}

	_, err := a.svc.LoadHomeTimeline(ctx)

	return err
}

type reactCommand struct {
	kind string
	undo bool

	User string `long:"user" description:"profile id whose posts contain the post, home timeline when omitted"`
	Args idArg  `positional-args:"yes"`
}

func (c *reactCommand) Execute(_ []string) error {
	return oneShot(func(ctx context.Context, a *agent) error {
		if err := loadPosts(ctx, a, c.User); err != nil {
			return err
		}

		do := a.svc.Like
		switch {
		case c.kind == "like" && c.undo:
			do = a.svc.Unlike
		case c.kind == "repost" && !c.undo:
			do = a.svc.Repost
		case c.kind == "repost" && c.undo:
			do = a.svc.Unrepost
		}

		counter, err := do(ctx, c.Args.ID)
		if err != nil {
			return err
		}

		fmt.Printf("%s\t%t\t%d\n", c.kind, counter.Active, counter.Count)

		return nil
	})
}

type deleteCommand struct {
	User string `long:"user" description:"profile id whose posts contain the post, home timeline when omitted"`
	Args idArg  `positional-args:"yes"`
}

func (c *deleteCommand) Execute(_ []string) error {
	return oneShot(func(ctx context.Context, a *agent) error {
		if err := loadPosts(ctx, a, c.User); err != nil {
			return err
		}

		if err := a.svc.RequestDelete(c.Args.ID); err != nil {
			return err
		}

		return a.svc.ConfirmDelete(ctx, c.Args.ID)
	})
}

type searchCommand struct {
	Args struct {
		Username string `positional-arg-name:"username" required:"yes"`
	} `positional-args:"yes"`
}

func (c *searchCommand) Execute(_ []string) error {
	return oneShot(func(ctx context.Context, a *agent) error {
		list, err := a.svc.Search(ctx, c.Args.Username)
		if err != nil {
			return err
		}

		for _, p := range list {
			printProfileLine(os.Stdout, p)
		}

		return nil
	})
}
