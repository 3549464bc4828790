// Package worker builds a top-level [buildlog.WorkerFailure] from a parsed
// log by dispatching on the failed stage to the right finder: buildfail,
// preamble, autopkgtest, or apt.
package worker

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/quay/zlog"
	"go.opentelemetry.io/otel/baggage"

	"github.com/quay/buildlog"
	"github.com/quay/buildlog/apt"
	"github.com/quay/buildlog/autopkgtest"
	"github.com/quay/buildlog/buildfail"
	"github.com/quay/buildlog/preamble"
	"github.com/quay/buildlog/problem"
	"github.com/quay/buildlog/section"
	"github.com/quay/buildlog/stage"
)

// sbuildFocusSection maps a failed stage name to the titled section whose
// lines the corresponding finder runs against.
var sbuildFocusSection = map[string]string{
	"build":                     "build",
	"run-post-build-commands":   "post build commands",
	"post-build":                "post build",
	"install-deps":              "install package build dependencies",
	"explain-bd-uninstallable":  "install package build dependencies",
	"apt-get-update":            "update chroot",
	"arch-check":                "check architectures",
	"check-space":               "cleanup",
}

// WorkerFailureFromLog reads a complete sbuild log from r and classifies it.
func WorkerFailureFromLog(ctx context.Context, r io.Reader) buildlog.WorkerFailure {
	ctx = contextWithValues(ctx, "component", "worker.WorkerFailureFromLog")
	zlog.Debug(ctx).Msg("parsing sections")
	sections := section.ParseSections(r)
	return WorkerFailureFromSections(ctx, sections)
}

// WorkerFailureFromSections classifies an already-sectioned log.
func WorkerFailureFromSections(ctx context.Context, sections []section.Section) buildlog.WorkerFailure {
	byTitle := map[string][]string{}
	var preambleLines []string
	onlyPreamble := len(sections) == 1 && sections[0].Preamble
	for _, s := range sections {
		if s.Preamble {
			preambleLines = s.Lines
			continue
		}
		byTitle[strings.ToLower(s.Title)] = s.Lines
	}

	if onlyPreamble {
		if res := preamble.Find(preambleLines); res.Problem != nil {
			zlog.Debug(ctx).Msg("classified as unpack failure from preamble-only log")
			return buildlog.WorkerFailure{
				Stage:       "unpack",
				Description: describe(res.Problem, res.Line, "build failed"),
				Problem:     res.Problem,
				LineOffset:  res.Offset,
			}
		}
	}

	failedStage, _ := stage.Find(byTitle["summary"])
	sectionLines := byTitle[sbuildFocusSection[failedStage]]
	switch failedStage {
	case "run-post-build-commands", "post-build":
		failedStage = "autopkgtest"
	}

	wf := buildlog.WorkerFailure{Stage: failedStage}

	switch failedStage {
	case "create-session":
		off, line, prob := findCreationSessionError(sectionLines)
		if prob != nil {
			wf.Phase = &buildlog.Phase{Name: "create-session"}
			wf.LineOffset, wf.Description, wf.Problem = off, line, prob
		}
	case "build":
		res := buildfail.Find(sectionLines)
		if res.Found() {
			wf.Phase = &buildlog.Phase{Name: "build"}
			wf.LineOffset = res.Offset
			wf.Problem = res.Problem
			wf.Description = describe(res.Problem, res.Line, "")
		}
	case "autopkgtest":
		res := autopkgtest.Find(sectionLines)
		wf.Phase = &buildlog.Phase{Name: "autopkgtest", Detail: res.TestName}
		if res.Found() {
			wf.LineOffset = res.Offset
			wf.Problem = res.Problem
			wf.Description = describe(res.Problem, res.Description, "")
		}
	case "apt-get-update":
		res := apt.FindFailure(byTitle["update chroot"])
		if res.Found() {
			wf.LineOffset = res.Offset
			wf.Problem = res.Problem
			wf.Description = describe(res.Problem, "", "")
		}
	case "install-deps", "explain-bd-uninstallable":
		if _, res, ok := apt.FindInstallDepsFailure(sections); ok {
			wf.LineOffset = res.Offset
			wf.Problem = res.Problem
			switch {
			case res.Problem != nil:
				wf.Description = res.Problem.String()
			case strings.HasPrefix(res.Line, "E: "):
				wf.Description = strings.TrimPrefix(res.Line, "E: ")
			default:
				wf.Description = res.Line
			}
		}
	case "arch-check":
		off, _, prob := findArchCheckFailure(sectionLines)
		wf.LineOffset = off
		wf.Problem = prob
		wf.Description = describe(prob, "", "")
	case "check-space":
		off, _, prob := findCheckSpaceFailure(sectionLines)
		wf.LineOffset = off
		wf.Problem = prob
		wf.Description = describe(prob, "", "")
	}

	if wf.Description == "" && wf.Stage != "" {
		wf.Description = fmt.Sprintf("build failed stage %s", wf.Stage)
	}
	if wf.Description == "" {
		wf.Description = "build failed"
		wf.Phase = &buildlog.Phase{Name: "buildenv"}
		if onlyPreamble {
			if off, desc, prob, ok := genericPreambleFallback(preambleLines); ok {
				wf.LineOffset, wf.Description, wf.Problem = off, desc, prob
			}
		}
	}

	zlog.Debug(ctx).Str("stage", wf.Stage).Str("description", wf.Description).Msg("classified")
	return wf
}

// describe picks a human-readable description, preferring the Problem's own
// rendering, then a raw matched line, then a default.
func describe(p problem.Problem, line, def string) string {
	if p != nil {
		return p.String()
	}
	if line != "" {
		return line
	}
	return def
}

func contextWithValues(ctx context.Context, kv ...string) context.Context {
	b := baggage.FromContext(ctx)
	members := b.Members()
	for i := 0; i+1 < len(kv); i += 2 {
		if m, err := baggage.NewMember(kv[i], kv[i+1]); err == nil {
			members = append(members, m)
		}
	}
	if nb, err := baggage.New(members...); err == nil {
		ctx = baggage.ContextWithBaggage(ctx, nb)
	}
	return ctx
}

// findCreationSessionError implements the "create-session" stage: a
// backward scan where any "E: " line is a tentative result, superseded
// immediately by a disk-space line.
func findCreationSessionError(lines []string) (offset int, line string, p problem.Problem) {
	for i := len(lines) - 1; i >= 0; i-- {
		l := strings.TrimRight(lines[i], "\r\n")
		if strings.HasSuffix(l, ": No space left on device") {
			return i + 1, l, problem.NoSpaceOnDevice{}
		}
		if strings.HasPrefix(l, "E: ") {
			offset, line = i+1, l
		}
	}
	return offset, line, nil
}

var archNotInList = regexp.MustCompile(`^E: dsc: (.*) not in arch list or does not match any arch wildcards: (.*) -- skipping$`)

func findArchCheckFailure(lines []string) (offset int, line string, p problem.Problem) {
	for i, l := range lines {
		l = strings.TrimRight(l, "\r\n")
		if m := archNotInList.FindStringSubmatch(l); m != nil {
			return i + 1, l, problem.ArchitectureNotInList{Arch: m[1], ArchList: m[2]}
		}
	}
	if len(lines) > 0 {
		return len(lines), strings.TrimRight(lines[len(lines)-1], "\r\n"), nil
	}
	return 0, "", nil
}

var insufficientDiskSpace = regexp.MustCompile(`^I: Source needs ([0-9]+) KiB, while ([0-9]+) KiB is free\.?\)?$`)

func findCheckSpaceFailure(lines []string) (offset int, line string, p problem.Problem) {
	for i, l := range lines {
		l = strings.TrimRight(l, "\r\n")
		if l != "E: Disk space is probably not sufficient for building." {
			continue
		}
		if i+1 < len(lines) {
			next := strings.TrimRight(lines[i+1], "\r\n")
			if m := insufficientDiskSpace.FindStringSubmatch(next); m != nil {
				var needed, free int
				fmt.Sscanf(m[1], "%d", &needed)
				fmt.Sscanf(m[2], "%d", &free)
				return i + 1, l, problem.InsufficientDiskSpace{Needed: int64(needed), Free: int64(free)}
			}
		}
		return i + 1, l, nil
	}
	return 0, "", nil
}

var (
	rePatchDoesNotApply  = regexp.MustCompile(`^Patch (.*) does not apply \(enforce with -f\)$`)
	rePatchSubprocess    = regexp.MustCompile(`^dpkg-source: error: LC_ALL=C patch .*--reject-file=- < .*/debian/patches/([^ ]+) subprocess returned exit status 1`)
	reFormatUnbuildable  = regexp.MustCompile(`^dpkg-source: error: can't build with source format '(.*)': (.*)$`)
	reCannotReadPatch    = regexp.MustCompile(`^dpkg-source: error: cannot read (.*): No such file or directory$`)
	reFormatUnsupported  = regexp.MustCompile(`^dpkg-source: error: source package format '(.*)' is not supported: (.*)$`)
	reDpkgSourceGeneric  = regexp.MustCompile(`^dpkg-source: error: (.*)$`)
	reNoSuchRevision     = regexp.MustCompile(`^breezy\.errors\.NoSuchRevision: (.*) has no revision b'(.*)'$`)
)

// genericPreambleFallback is the last-resort scan the original runs over an
// all-preamble log when [preamble.Find] didn't classify anything: it looks
// for a handful of patch-application and source-format problems that
// [preamble.Find] doesn't cover.
func genericPreambleFallback(lines []string) (offset int, description string, p problem.Problem, ok bool) {
	for i := len(lines) - 1; i >= 0; i-- {
		l := strings.TrimRight(lines[i], "\r\n")
		switch {
		case rePatchDoesNotApply.MatchString(l):
			m := rePatchDoesNotApply.FindStringSubmatch(l)
			name := path.Base(m[1])
			return i + 1, fmt.Sprintf("Patch %s failed to apply", name), problem.PatchApplicationFailed{Name: name}, true
		case rePatchSubprocess.MatchString(l):
			m := rePatchSubprocess.FindStringSubmatch(l)
			return i + 1, fmt.Sprintf("Patch %s failed to apply", m[1]), problem.PatchApplicationFailed{Name: m[1]}, true
		case reFormatUnbuildable.MatchString(l):
			m := reFormatUnbuildable.FindStringSubmatch(l)
			return i + 1, m[2], problem.SourceFormatUnbuildable{Format: m[1]}, true
		case reCannotReadPatch.MatchString(l):
			m := reCannotReadPatch.FindStringSubmatch(l)
			parts := strings.SplitN(m[1], "/", 2)
			pathname := m[1]
			if len(parts) == 2 {
				pathname = parts[1]
			}
			return i + 1, fmt.Sprintf("Patch file %s in series but missing", pathname), problem.PatchFileMissing{Path: pathname}, true
		case reFormatUnsupported.MatchString(l):
			m := reFormatUnsupported.FindStringSubmatch(l)
			res := buildfail.Find([]string{m[2]})
			prob := res.Problem
			desc := m[2]
			if prob == nil {
				prob = problem.SourceFormatUnsupported{Format: m[1]}
			}
			if res.Line != "" {
				desc = res.Line
			}
			return i + 1, desc, prob, true
		case reNoSuchRevision.MatchString(l):
			m := reNoSuchRevision.FindStringSubmatch(l)
			return i + 1, fmt.Sprintf("Revision %q is not present", m[2]), problem.MissingRevision{RevisionID: m[2]}, true
		case reDpkgSourceGeneric.MatchString(l):
			m := reDpkgSourceGeneric.FindStringSubmatch(l)
			return i + 1, m[1], nil, true
		}
	}
	return 0, "", nil, false
}
