// Command buildlogctl classifies a single sbuild log, grounded on cctool's
// flag-parsed, signal-cancellable shape but reduced to one job: read a log,
// print the resulting WorkerFailure.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/quay/buildlog"
	"github.com/quay/buildlog/worker"
)

type yamlWorkerFailure struct {
	Stage       string            `yaml:"stage,omitempty"`
	Phase       *yamlPhase        `yaml:"phase,omitempty"`
	Description string            `yaml:"description"`
	ProblemKind string            `yaml:"problem_kind,omitempty"`
	Problem     string            `yaml:"problem,omitempty"`
	Global      bool              `yaml:"global,omitempty"`
	LineOffset  int               `yaml:"line_offset,omitempty"`
}

type yamlPhase struct {
	Name   string `yaml:"name"`
	Detail string `yaml:"detail,omitempty"`
}

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("buildlogctl", flag.ExitOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
		fmt.Fprintln(out, "  buildlogctl [FILE]")
		fmt.Fprintln(out, "reads an sbuild log from FILE (or stdin) and prints a WorkerFailure as YAML")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 2
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sig
		cancel()
	}()

	in := os.Stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			log.Print(err)
			return 1
		}
		defer f.Close()
		in = f
	}

	wf := worker.WorkerFailureFromLog(ctx, in)
	if err := yaml.NewEncoder(os.Stdout).Encode(toYAML(wf)); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}

func toYAML(wf buildlog.WorkerFailure) yamlWorkerFailure {
	out := yamlWorkerFailure{
		Stage:       wf.Stage,
		Description: wf.Description,
		LineOffset:  wf.LineOffset,
	}
	if wf.Phase != nil {
		out.Phase = &yamlPhase{Name: wf.Phase.Name, Detail: wf.Phase.Detail}
	}
	if wf.Problem != nil {
		out.ProblemKind = wf.Problem.Kind()
		out.Problem = wf.Problem.String()
		out.Global = wf.Problem.IsGlobal()
	}
	return out
}
