package pattern

import (
	"regexp"
	"strings"
)

// Secondary is the forward-scan fallback list: lines that are clearly part
// of a failure but don't carry enough structure for a typed Problem. A
// match only ever yields consumed=[i], Problem=nil.
var Secondary = compileSecondaryList([]string{
	`Exception in thread "(.*)" (.*): (.*);`,
	`error: Unrecognized option: '.*'`,
	`.*: No space left on device`,
	`Segmentation fault`,
	`make\[[0-9]+\]: \*\*\* \[.*:[0-9]+: .*\] Segmentation fault`,
	`make\[[0-9]+\]: \*\*\* No rule to make target '(?:(?:maintainer-)?clean)'\.  Stop\.`,
	`.*:[0-9]+: \*\*\* empty variable name\.  Stop\.`,
	`Project ERROR: .*`,
	`\!  ==> Fatal error occurred, no output PDF file produced\!`,
	`\! Undefined control sequence\.`,
	`\! Emergency stop\.`,
	`Errors while running CTest`,
	`dh_auto_install: error: .*`,
	`dh.*: Aborting due to earlier error`,
	`dh.*: unknown option or error during option parsing; aborting`,
	`configure\.ac:[0-9]+: error: (.*)`,
	`[^:]+: line [0-9]+:\s+[0-9]+ Segmentation fault.*`,
	`.*(?:No space left on device).*`,
	`dpkg-gencontrol: error: (.*)`,
	`.*:[0-9]+:[0-9]+: (?:error|ERROR): (.*)`,
	`FAIL: (.*)`,
	`FAIL (.*) \(.*\)`,
	`FAIL\s+(.*) \[.*\] ?`,
	`TEST FAILURE`,
	`make\[[0-9]+\]: \*\*\* \[.*\] Error [0-9]+`,
	`make\[[0-9]+\]: \*\*\* \[.*\] Aborted`,
	`chmod: cannot access '.*': No such file or directory`,
	`dh_autoreconf: autoreconf .* returned exit code [0-9]+`,
	`make: \*\*\* \[.*\] Error [0-9]+`,
	`.*:[0-9]+: \*\*\* missing separator\.  Stop\.`,
	`[^:]+: cannot stat '.*': No such file or directory`,
	`\*\*Error:\*\* (.*)`,
	`Error: (.*)`,
	`Failed [0-9]+ tests? out of [0-9]+, [0-9.]+% okay\.`,
	`Original error was: (.*)`,
	`[^:]+: error: (.*)`,
	`[^:]+:[0-9]+: error: (.*)`,
	`FAILED \(.*\)`,
	`cat: (.*): No such file or directory`,
	`FAIL\t(.*)\t[0-9.]+s`,
	`.*\.go:[0-9]+:[0-9]+: (?:note:.*|(?:[^n].*|n[^o].*|no[^t].*))`,
	`/usr/bin/ld: cannot open output file (.*): No such file or directory`,
	`configure: error: (.*)`,
	`config\.status: error: (.*)`,
	`E: Build killed with signal TERM after ([0-9]+) minutes of inactivity`,
	`cp: target '(.*)' is not a directory`,
	`cp: cannot create regular file '(.*)': No such file or directory`,
	`ln: failed to create symbolic link '(.*)': File exists`,
	`ln: failed to create symbolic link '(.*)': No such file or directory`,
	`ln: failed to create symbolic link '(.*)': Permission denied`,
	`mkdir: cannot create directory .(.*).: No such file or directory`,
	`mkdir: cannot create directory .(.*).: File exists`,
	`Fatal error: .*`,
	`ninja: build stopped: subcommand failed\.`,
	`.*\.s:[0-9]+: Error: .*`,
	`npm ERR\! (.*)`,
	`install: failed to access '(.*)': (.*)`,
	`E: (.*)`,
	`.*Segmentation fault.*`,
	`cc: error: (.*)`,
	`\[ERROR\] .*`,
	`dh_auto_(?:test|build): error: (.*)`,
})

func compileSecondaryList(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, compileSecondary(p))
	}
	return out
}

// MatchSecondary reports whether any secondary pattern fully matches
// lines[i].
func MatchSecondary(lines []string, i int) bool {
	line := strings.TrimRight(lines[i], "\r\n")
	for _, re := range Secondary {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
