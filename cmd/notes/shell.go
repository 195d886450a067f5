package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/notes/pkg/core"
	"github.com/spf13/cobra"
)

const shellHelp = `
Available commands:

  add [name] [text...] [tag]     add a note (with 3+ words the last one is the tag)
  all                            show every note
  delete [name]                  delete a note
  edit_name [old] [new]          rename a note
  edit_text [name] [text...]     replace the text of a note
  edit_tag [name] [tag]          retag a note (omit tag to untag)
  search [part of name]          search notes by name
  search_notes [keyword]         search notes by text
  search_tag [tag]               list notes with exactly this tag
  match [glob]                   list notes whose name matches a glob (todo-*, work/**)
  tags                           list tags in use
  status                         show the book file, note count and format
  help                           show this help
  back                           leave the notes shell
  exit / close                   quit
`

// Shell is the interactive notes prompt. It reads one command per line.
type Shell struct {
	svc    *core.Service
	in     io.Reader
	out    io.Writer
	prompt string
}

// NewShell creates a shell over svc reading from in and writing to out.
func NewShell(svc *core.Service, in io.Reader, out io.Writer) *Shell {
	return &Shell{svc: svc, in: in, out: out, prompt: "--> "}
}

// Run processes lines until a quit command or end of input.
// A failing command prints a message and the loop continues.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to notes!")
	fmt.Fprintln(s.out, "Type 'help' to see the available commands.")

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		reply, quit := s.Execute(ctx, scanner.Text())
		if reply != "" {
			fmt.Fprintln(s.out, reply)
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single command line and returns the reply and whether the shell should stop.
func (s *Shell) Execute(ctx context.Context, line string) (string, bool) {
	command, args := parseInput(line)
	if command == "" {
		return "", false
	}
	slog.Debug("shell command", "command", command, "args", len(args))

	var (
		reply string
		err   error
	)

	switch command {
	case "add":
		reply, err = s.add(ctx, args)
	case "delete":
		if err = need(args, 1, "delete [name]"); err == nil {
			reply, err = deleteNote(ctx, s.svc, args[0])
		}
	case "edit_name":
		if err = need(args, 2, "edit_name [old] [new]"); err == nil {
			reply, err = renameNote(ctx, s.svc, args[0], args[1])
		}
	case "edit_text":
		if err = need(args, 2, "edit_text [name] [text...]"); err == nil {
			reply, err = editNoteText(ctx, s.svc, args[0], strings.Join(args[1:], " "))
		}
	case "edit_tag":
		if err = need(args, 1, "edit_tag [name] [tag]"); err == nil {
			reply, err = editNoteTag(ctx, s.svc, args[0], strings.Join(args[1:], " "))
		}
	case "all":
		reply = renderNotes(s.svc.List(), "The note book is empty.")
	case "search":
		if err = need(args, 1, "search [part of name]"); err == nil {
			reply = renderNotes(s.svc.SearchByName(strings.Join(args, " ")), "No notes found.")
		}
	case "search_notes":
		if err = need(args, 1, "search_notes [keyword]"); err == nil {
			reply = renderNotes(s.svc.SearchByText(strings.Join(args, " ")), "No notes found by text.")
		}
	case "search_tag":
		if err = need(args, 1, "search_tag [tag]"); err == nil {
			reply = renderNotes(s.svc.SearchByTag(args[0]), "No notes with this tag.")
		}
	case "match":
		if err = need(args, 1, "match [glob]"); err == nil {
			var found []core.Note
			if found, err = s.svc.Match(args[0]); err == nil {
				reply = renderNotes(found, "No notes match.")
			}
		}
	case "tags":
		reply = renderTags(s.svc.Tags())
	case "status":
		var b strings.Builder
		printStatus(&b, s.svc)
		reply = strings.TrimRight(b.String(), "\n")
	case "help":
		reply = shellHelp
	case "back":
		return "Leaving notes.", true
	case "exit", "close":
		return "Thanks for using notes. See you soon!", true
	default:
		reply = fmt.Sprintf("Unknown command %q. Type 'help' for the list of commands.", command)
	}

	if err != nil {
		return describeError(err), false
	}
	return reply, false
}

// add takes the last word as the tag when three or more words follow the command.
func (s *Shell) add(ctx context.Context, args []string) (string, error) {
	if err := need(args, 2, "add [name] [text...] [tag]"); err != nil {
		return "", err
	}

	name, text, tag := args[0], args[1], ""
	if len(args) > 2 {
		text = strings.Join(args[1:len(args)-1], " ")
		tag = args[len(args)-1]
	}
	return addNote(ctx, s.svc, name, text, tag)
}

// parseInput splits a line into a lower-cased command and its arguments.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

func need(args []string, n int, usage string) error {
	if len(args) < n {
		return fmt.Errorf("%w: usage: %s", core.ErrArgument, usage)
	}
	return nil
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive notes prompt",
	Long:  `Start an interactive prompt that accepts one command per line. Type 'help' inside it for the command list.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runShell(cmd)
	},
}

func runShell(cmd *cobra.Command) {
	svc := openBook(cmd)
	shell := NewShell(svc, cmd.InOrStdin(), cmd.OutOrStdout())
	if err := shell.Run(cmd.Context()); err != nil {
		fatal("Shell stopped", err)
	}
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
