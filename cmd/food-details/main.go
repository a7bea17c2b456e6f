package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"gofood/configs"
	"gofood/pkg/api"
	"gofood/screen"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code once the screen has drained its requests.
func run(args []string) int {
	fs := flag.NewFlagSet("food-details", flag.ContinueOnError)
	foodID := fs.Uint("id", 1, "food id to open")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := configs.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := api.New(cfg.APIURL, api.WithToken(cfg.APIToken), api.WithTimeout(cfg.APITimeout))
	if cfg.APIToken == "" && cfg.APIEmail != "" {
		if _, err := client.Login(ctx, cfg.APIEmail, cfg.APIPassword); err != nil {
			log.Printf("❌ login as %s failed: %v", cfg.APIEmail, err)
			return 1
		}
	}

	s := screen.New(client, uint(*foodID))
	defer func() {
		s.Close()
		s.Wait()
	}()

	fmt.Println(renderLoading())
	if err := s.Load(ctx); err != nil {
		log.Printf("❌ %v", err)
		return 1
	}
	fmt.Println(render(s.Snapshot()))
	fmt.Println(helpStyle.Render(helpText))

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(promptStyle.Render("> "))
		if !in.Scan() || ctx.Err() != nil {
			return 0
		}

		cmd, err := parseCommand(in.Text())
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			continue
		}
		if cmd.kind == cmdQuit {
			return 0
		}
		if msg := apply(ctx, s, cmd); msg != "" {
			fmt.Println(msg)
		}
		fmt.Println(render(s.Snapshot()))
	}
}

// apply runs one command against the screen and returns a status line, if any.
func apply(ctx context.Context, s *screen.FoodDetails, cmd command) string {
	switch cmd.kind {
	case cmdIncFood:
		s.IncrementFood()
	case cmdDecFood:
		s.DecrementFood()
	case cmdIncExtra:
		s.IncrementExtra(cmd.id)
	case cmdDecExtra:
		s.DecrementExtra(cmd.id)
	case cmdFavorite:
		if err := s.ToggleFavorite(); err != nil {
			return errorStyle.Render(err.Error())
		}
	case cmdOrder:
		receipt, err := s.SubmitOrder(ctx)
		if err != nil {
			return errorStyle.Render("order failed: " + err.Error())
		}
		return renderReceipt(receipt)
	case cmdHelp:
		return helpStyle.Render(helpText)
	}
	return ""
}
