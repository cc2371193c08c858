package commands

import (
	"context"
	"flag"
	"fmt"
)

// Help displays the command list or the long form help for a single command.
type Help struct {
	cli []Command
}

func NewHelp(cli []Command) *Help {
	return &Help{cli: cli}
}

func (h *Help) Name() string {
	return "help"
}

func (h *Help) Description() string {
	return "Displays the help for a command"
}

func (h *Help) Usage() string {
	return "[command]"
}

func (h *Help) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("help", flag.ExitOnError)
}

func (h *Help) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s help [command]\n", APP)
	fmt.Println()
	fmt.Println("  Displays the list of commands or the detailed help for a command")
	fmt.Println()
}

func (h *Help) Execute(ctx context.Context, options *Options) error {
	if args := flag.Args(); len(args) > 1 {
		for _, c := range h.cli {
			if c.Name() == args[1] {
				c.Help()
				return nil
			}
		}

		return fmt.Errorf("invalid command: '%v'", args[1])
	}

	h.usage()

	return nil
}

func (h *Help) usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] <command> [options]\n", APP)
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	fmt.Printf("    %-16s %s\n", h.Name(), h.Description())
	for _, c := range h.cli {
		fmt.Printf("    %-16s %s\n", c.Name(), c.Description())
	}

	fmt.Println()
	fmt.Println("  Options:")
	fmt.Println()
	fmt.Println("    --debug Displays internal information for diagnosing errors")
	fmt.Println()
}

// Parse returns the command named by the first argument with its flags parsed from the remaining
// arguments. A nil command is returned if there are no arguments.
func Parse(cli []Command, help *Help, args []string) (Command, error) {
	if len(args) == 0 {
		return nil, nil
	}

	if args[0] == help.Name() {
		return help, nil
	}

	for _, c := range cli {
		if c.Name() == args[0] {
			flagset := c.FlagSet()
			if err := flagset.Parse(args[1:]); err != nil {
				return nil, err
			}

			return c, nil
		}
	}

	return nil, fmt.Errorf("invalid command: '%v'", args[0])
}
