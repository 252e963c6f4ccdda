package cli

import (
	"context"
	"strconv"
)

// Messages prints the flash queue, numbered from 1.
func (a *App) Messages(ctx context.Context) error {
	msgs := a.flash.List()
	if len(msgs) == 0 {
		a.printf("No messages.\n")
		return nil
	}
	for i, m := range msgs {
		a.printf("%d. %s\n", i+1, m)
	}
	return nil
}

func (a *App) Dismiss(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("Usage: dismiss <n>\n")
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || !a.flash.Remove(n-1) {
		a.printf("No message %s.\n", args[0])
	}
	return nil
}
