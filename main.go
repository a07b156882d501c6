package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/mattn/go-isatty"
)

const greeting = "Welcome to bigcalc. Enter an expression, an assignment, or /help."

func main() {
	log.SetFlags(0)

	var transcriptDir string
	flag.StringVar(&transcriptDir, "transcript", "", "directory to write a session transcript into")
	flag.Parse()

	fs := osfs.New(".")
	s := newSession(os.Stdout)

	if transcriptDir != "" {
		f, err := createTranscript(fs, transcriptDir, s.id)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		s.transcript = f
	}

	if isatty.IsTerminal(os.Stdout.Fd()) {
		s.warn = color.New(color.FgRed).SprintFunc()
	}

	if flag.NArg() > 0 {
		for _, name := range flag.Args() {
			f, err := openScript(fs, name)
			if err != nil {
				log.Fatal(err)
			}
			alive := s.run(f)
			f.Close()
			if !alive {
				return
			}
		}
		return
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		s.run(os.Stdin)
		return
	}

	repl(s)
}

func repl(s *session) {
	fmt.Println(greeting)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if !s.handleLine(scanner.Text()) {
			break
		}
	}
}
