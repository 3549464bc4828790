// Package autopkgtest parses the embedded autopkgtest transcript sbuild
// captures when it runs a package's as-installed tests.
package autopkgtest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quay/buildlog/apt"
	"github.com/quay/buildlog/buildfail"
	"github.com/quay/buildlog/problem"
)

// Result mirrors the shape of [buildfail.Match] plus the test name and a
// human description, since autopkgtest failures aren't always attributable
// to a single named Problem.
type Result struct {
	Offset      int
	TestName    string
	Problem     problem.Problem
	Description string
}

func (r Result) Found() bool { return r.Offset > 0 }

type bucketKey struct {
	Test string
	Kind string
}

var summaryKey = bucketKey{Kind: "summary"}

var reTimestamp = regexp.MustCompile(`^autopkgtest \[([0-9:]+)\]: (.*)$`)

func autopkgtestMessage(line string) (string, bool) {
	m := reTimestamp.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if m == nil {
		return "", false
	}
	return m[2], true
}

// Find runs the autopkgtest state machine over lines: one pass building up
// per-test/per-bucket line buffers, interpreting "ERROR:" records against
// the currently active bucket as they're seen, and falling back to the
// run's summary section once the pass completes.
func Find(lines []string) Result {
	buckets := map[bucketKey][]string{}
	offsets := map[bucketKey]int{}
	var current *bucketKey

	for i := 0; i < len(lines); i++ {
		msg, ok := autopkgtestMessage(lines[i])
		if !ok {
			if current != nil {
				buckets[*current] = append(buckets[*current], lines[i])
			}
			continue
		}

		switch {
		case strings.HasPrefix(msg, "@@@@@@@@@@@@@@@@@@@@ source"):
			current = nil
		case strings.HasPrefix(msg, "@@@@@@@@@@@@@@@@@@@@ summary"):
			k := summaryKey
			openBucket(buckets, offsets, k, i)
			current = &k
		case strings.HasPrefix(msg, "test "):
			current = openTestBucket(buckets, offsets, msg, i)
		case strings.HasPrefix(msg, "ERROR:"):
			lastTest := ""
			if current != nil {
				lastTest = current.Test
			}
			if res, handled := interpretError(lines, i, strings.TrimPrefix(msg, "ERROR: "), current, buckets, offsets, lastTest); handled {
				return res
			}
		default:
			current = nil
		}
	}

	summaryLines, hasSummary := buckets[summaryKey]
	if !hasSummary {
		end := len(lines)
		for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
			end--
		}
		if end == 0 {
			return Result{}
		}
		return Result{Offset: end, Description: strings.TrimRight(lines[end-1], "\r\n")}
	}
	return interpretSummary(summaryLines, offsets[summaryKey], buckets, offsets)
}

func openBucket(buckets map[bucketKey][]string, offsets map[bucketKey]int, k bucketKey, i int) {
	buckets[k] = nil
	offsets[k] = i + 1
}

// openTestBucket parses a "test NAME: STATUS" message and opens (or
// closes) the corresponding bucket.
func openTestBucket(buckets map[bucketKey][]string, offsets map[bucketKey]int, msg string, i int) *bucketKey {
	rest := strings.TrimPrefix(msg, "test ")
	parts := strings.SplitN(rest, ": ", 2)
	if len(parts) != 2 {
		return nil
	}
	testname, status := parts[0], parts[1]
	switch status {
	case "-----------------------]":
		return nil
	case "[-----------------------":
		status = "output"
	case " - - - - - - - - - - results - - - - - - - - - -":
		status = "results"
	case " - - - - - - - - - - stderr - - - - - - - - - -":
		status = "stderr"
	case "preparing testbed":
		status = "prepare testbed"
	}
	k := bucketKey{Test: testname, Kind: status}
	openBucket(buckets, offsets, k, i)
	return &k
}

var (
	reFailedWithStderr  = regexp.MustCompile(`^"(?:.*)" failed with stderr "(.*)"?$`)
	reChrootDisappeared = regexp.MustCompile(`^W: (.*): Failed to stat file: No such file or directory$`)
	reTestbedFailure    = regexp.MustCompile(`^testbed failure: (.*)$`)
	reErroneousPackage  = regexp.MustCompile(`^erroneous package: (.*)$`)
)

func interpretError(lines []string, i int, msg string, current *bucketKey, buckets map[bucketKey][]string, offsets map[bucketKey]int, lastTest string) (Result, bool) {
	if m := reFailedWithStderr.FindStringSubmatch(msg); m != nil {
		if reChrootDisappeared.MatchString(m[1]) {
			return Result{Offset: i + 1, TestName: lastTest, Problem: problem.AutopkgtestDepChrootDisappeared{}, Description: m[1]}, true
		}
	}

	if m := reTestbedFailure.FindStringSubmatch(msg); m != nil {
		reason := m[1]
		switch {
		case current != nil && reason == "testbed auxverb failed with exit code 255":
			field := bucketKey{Test: current.Test, Kind: "output"}
			if res := buildfail.Find(buckets[field]); res.Found() {
				return Result{Offset: offsets[field] + res.Offset, TestName: lastTest, Problem: res.Problem, Description: res.Line}, true
			}
		case reason == "sent `auxverb_debug_fail', got `copy-failed', expected `ok...'":
			if res := buildfail.Find(lines); res.Found() {
				return Result{Offset: res.Offset, TestName: lastTest, Problem: res.Problem, Description: res.Line}, true
			}
		case reason == "cannot send to testbed: [Errno 32] Broken pipe":
			if res := FindTestbedSetupFailure(lines); res.Found() {
				return Result{Offset: res.Offset, TestName: lastTest, Problem: res.Problem, Description: res.Description}, true
			}
		case reason == "apt repeatedly failed to download packages":
			if res := apt.FindFailure(lines); res.Found() {
				return Result{Offset: res.Offset, TestName: lastTest, Problem: res.Problem, Description: res.Line}, true
			}
			return Result{Offset: i + 1, TestName: lastTest, Problem: problem.AptFetchFailure{Error: reason}}, true
		}
		return Result{Offset: i + 1, TestName: lastTest, Problem: problem.AutopkgtestTestbedFailure{Reason: reason}}, true
	}

	if m := reErroneousPackage.FindStringSubmatch(msg); m != nil {
		if res := buildfail.Find(lines[:i]); res.Found() {
			return Result{Offset: res.Offset, TestName: lastTest, Problem: res.Problem, Description: res.Line}, true
		}
		return Result{Offset: i + 1, TestName: lastTest, Problem: problem.AutopkgtestErroneousPackage{Reason: m[1]}}, true
	}

	if current != nil {
		if res := apt.FindFailure(buckets[*current]); res.Found() {
			return Result{Offset: offsets[*current] + res.Offset, TestName: lastTest, Problem: res.Problem, Description: res.Line}, true
		}
	}
	return Result{Offset: i + 1, TestName: lastTest, Description: msg}, true
}

type summaryEntry struct {
	LineNo   int
	TestName string
	Result   string
	Reason   string
	Extra    []string
}

var (
	rePassLine   = regexp.MustCompile(`^(\S+)\s+PASS$`)
	reResultLine = regexp.MustCompile(`^(\S+)\s+(FAIL|PASS|SKIP) (.+)$`)
)

func parseSummary(lines []string) []summaryEntry {
	var out []summaryEntry
	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r\n")
		if m := rePassLine.FindStringSubmatch(line); m != nil {
			out = append(out, summaryEntry{LineNo: i, TestName: m[1], Result: "PASS"})
			continue
		}
		m := reResultLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		e := summaryEntry{LineNo: i, TestName: m[1], Result: m[2], Reason: m[3]}
		if e.Reason == "badpkg" {
			for i+1 < len(lines) && (strings.HasPrefix(lines[i+1], "badpkg:") || strings.HasPrefix(lines[i+1], "blame:")) {
				i++
				e.Extra = append(e.Extra, strings.TrimRight(lines[i], "\r\n"))
			}
		}
		out = append(out, e)
	}
	return out
}

func interpretSummary(summaryLines []string, summaryOffset int, buckets map[bucketKey][]string, offsets map[bucketKey]int) Result {
	for _, e := range parseSummary(summaryLines) {
		if e.Result == "PASS" || e.Result == "SKIP" {
			continue
		}
		switch {
		case e.Reason == "timed out":
			return Result{Offset: summaryOffset + e.LineNo + 1, TestName: e.TestName, Problem: problem.AutopkgtestTimedOut{}, Description: e.Reason}
		case strings.HasPrefix(e.Reason, "stderr: "):
			return interpretStderrFailure(e, summaryOffset, buckets, offsets)
		case e.Reason == "badpkg":
			return interpretBadpkg(e, summaryOffset, buckets, offsets)
		default:
			return interpretOther(e, summaryOffset, buckets, offsets)
		}
	}
	return Result{}
}

func interpretStderrFailure(e summaryEntry, summaryOffset int, buckets map[bucketKey][]string, offsets map[bucketKey]int) Result {
	output := strings.TrimPrefix(e.Reason, "stderr: ")
	key := bucketKey{Test: e.TestName, Kind: "stderr"}
	var offset int
	var desc string
	var prob problem.Problem
	if lines := buckets[key]; len(lines) > 0 {
		if res := buildfail.Find(lines); res.Found() {
			offset = offsets[key] + res.Offset - 1
			desc, prob = res.Line, res.Problem
		}
	} else if res := buildfail.Find([]string{output}); res.Found() {
		desc, prob = res.Line, res.Problem
	}
	if offset == 0 {
		offset = summaryOffset + e.LineNo
	}
	if prob == nil {
		prob = problem.AutopkgtestStderrFailure{Line: output}
		if desc == "" {
			desc = fmt.Sprintf("Test %s failed due to unauthorized stderr output: %s", e.TestName, output)
		}
	}
	return Result{Offset: offset + 1, TestName: e.TestName, Problem: prob, Description: desc}
}

func interpretBadpkg(e summaryEntry, summaryOffset int, buckets map[bucketKey][]string, offsets map[bucketKey]int) Result {
	key := bucketKey{Test: e.TestName, Kind: "prepare testbed"}
	if lines := buckets[key]; len(lines) > 0 {
		if res := apt.FindFailure(lines); res.Found() {
			return Result{Offset: offsets[key] + res.Offset, TestName: e.TestName, Problem: res.Problem}
		}
	}
	var badpkg, blame string
	for _, l := range e.Extra {
		switch {
		case strings.HasPrefix(l, "badpkg: "):
			badpkg = strings.TrimPrefix(l, "badpkg: ")
		case strings.HasPrefix(l, "blame: "):
			blame = l
		}
	}
	desc := fmt.Sprintf("Test %s failed", e.TestName)
	if badpkg != "" {
		desc = fmt.Sprintf("Test %s failed: %s", e.TestName, strings.TrimRight(badpkg, "\r\n"))
	}
	return Result{Offset: summaryOffset + e.LineNo + 1, TestName: e.TestName, Problem: depsUnsatisfiableFromBlame(blame), Description: desc}
}

func interpretOther(e summaryEntry, summaryOffset int, buckets map[bucketKey][]string, offsets map[bucketKey]int) Result {
	key := bucketKey{Test: e.TestName, Kind: "output"}
	lines := buckets[key]
	res := buildfail.Find(lines)
	offset := summaryOffset + e.LineNo
	if res.Found() {
		offset = offsets[key] + res.Offset - 1
	}
	desc := res.Line
	if desc == "" {
		desc = fmt.Sprintf("Test %s failed: %s", e.TestName, e.Reason)
	}
	return Result{Offset: offset + 1, TestName: e.TestName, Problem: res.Problem, Description: desc}
}

// depsUnsatisfiableFromBlame parses a "blame: KIND:ARG KIND:ARG ..." line
// into an AutopkgtestDepsUnsatisfiable, preserving unrecognized kinds as
// empty.
func depsUnsatisfiableFromBlame(blame string) problem.Problem {
	if blame == "" {
		return problem.AutopkgtestDepsUnsatisfiable{}
	}
	rest := strings.TrimRight(strings.TrimPrefix(blame, "blame: "), "\r\n")
	var entries []problem.BlameEntry
	for _, tok := range strings.Fields(rest) {
		if i := strings.Index(tok, ":"); i >= 0 && (tok[:i] == "deb" || tok[:i] == "arg" || tok[:i] == "dsc") {
			entries = append(entries, problem.BlameEntry{Kind: tok[:i], Arg: tok[i+1:]})
		} else {
			entries = append(entries, problem.BlameEntry{Arg: tok})
		}
	}
	return problem.AutopkgtestDepsUnsatisfiable{Args: entries}
}

var (
	reTestbedSetupFailure = regexp.MustCompile(`^\[(.*)\] failed \(exit status ([0-9]+), stderr '(.*)'\)$`)
	reChrootNotFound      = regexp.MustCompile(`^E: (.*): Chroot not found\\n$`)
)

// FindTestbedSetupFailure implements §4.7: scans backward for a
// "[COMMAND] failed (exit status CODE, stderr 'STDERR')" line.
func FindTestbedSetupFailure(lines []string) Result {
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimRight(lines[i], "\r\n")
		m := reTestbedSetupFailure.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		command, stderr := m[1], m[3]
		exit := 0
		fmt.Sscanf(m[2], "%d", &exit)
		if cm := reChrootNotFound.FindStringSubmatch(stderr); cm != nil {
			return Result{Offset: i + 1, Problem: problem.ChrootNotFound{Name: cm[1]}, Description: line}
		}
		return Result{Offset: i + 1, Problem: problem.AutopkgtestTestbedSetupFailure{Command: command, Exit: exit, Stderr: stderr}, Description: line}
	}
	return Result{}
}
