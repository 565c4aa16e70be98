package main

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
)

// mainTemplate is written to src/main.rs of every scaffolded project.
const mainTemplate = `use std::fs;

fn main() {
    let mut s = fs::read_to_string("input.txt").unwrap();
}
`

const templateFile = "main.rs"

// commandRunner runs name with args in dir and returns its combined output.
type commandRunner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// scaffoldCommandError is returned when the init command fails. The template
// has still been written when this error is returned.
type scaffoldCommandError struct {
	Command string
	Args    []string
	Output  []byte
	Err     error
}

func (e *scaffoldCommandError) Error() string {
	return fmt.Sprintf("%s %v: %v", e.Command, e.Args, e.Err)
}

func (e *scaffoldCommandError) Unwrap() error { return e.Err }

// scaffolder creates a starter project for one puzzle day.
type scaffolder struct {
	root    string
	command string
	run     commandRunner
}

func newScaffolder(root, command string, run commandRunner) *scaffolder {
	if run == nil {
		run = execRunner
	}
	if command == "" {
		command = defaultScaffoldCommand
	}
	return &scaffolder{root: root, command: command, run: run}
}

// initArgs returns the init command arguments for d, with the project path
// relative to the scaffolder root.
func initArgs(d puzzleDate) []string {
	return []string{"init", d.dir(), "--name", "day_" + strconv.Itoa(d.Day)}
}

// scaffold runs the init command and then writes the template. A failing
// command yields a *scaffoldCommandError after the template is written; a
// failing template write is returned as is.
func (s *scaffolder) scaffold(ctx context.Context, d puzzleDate) error {
	args := initArgs(d)
	var cmdErr error
	if out, err := s.run(ctx, s.root, s.command, args...); err != nil {
		cmdErr = &scaffoldCommandError{Command: s.command, Args: args, Output: out, Err: err}
	}

	srcDir := filepath.Join(s.root, d.dir(), "src")
	if err := ensureDir(srcDir); err != nil {
		return err
	}
	if err := replaceFile(filepath.Join(srcDir, templateFile), []byte(mainTemplate), 0o644); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	return cmdErr
}
