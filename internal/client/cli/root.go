package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

func (a *App) getStatus(ctx context.Context) string {
	s := string(a.Mode)
	if !a.isLoggedIn(ctx) {
		s += ", logged out"
	}
	return "(" + s + ")"
}

// Root runs the interactive loop. Command handlers print their own errors;
// the loop itself only dispatches.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to Fittrack CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	go a.StartOnlineStatusWatcher(ctx, 30*time.Second)

	for {
		fmt.Printf("ft %s> ", a.getStatus(ctx))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			fmt.Println("Commands: login, logout, weight [list], food [totals], run, workouts, suggest <exercise>, targets [calc], exit")
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "weight":
			if len(args) > 0 && args[0] == "list" {
				err = a.listWeights(ctx)
			} else {
				err = a.addWeight(ctx)
			}
		case "food":
			if len(args) > 0 && args[0] == "totals" {
				err = a.foodTotals(ctx)
			} else {
				err = a.addFood(ctx)
			}
		case "run":
			err = a.addRun(ctx)
		case "workouts":
			err = a.listWorkouts(ctx)
		case "suggest":
			if len(args) == 0 {
				fmt.Println("Usage: suggest <exercise name>")
				continue
			}
			err = a.suggestProgression(ctx, strings.Join(args, " "))
		case "targets":
			if len(args) > 0 && args[0] == "calc" {
				err = a.calcTargets(ctx)
			} else {
				err = a.showTargets(ctx)
			}
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}

		if err != nil {
			fmt.Println("Error:", err)
		}
	}
}
