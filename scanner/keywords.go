package scanner

// reservedKeywords and shellCommands are the two fixed dictionaries this
// scanner needs: Python control-flow keywords (plus xontrib, the xonsh
// extension-loading statement) and a ~110-entry shell-command list. Both are
// plain Go maps, not a hand-rolled perfect hash or trie (see DESIGN.md for
// why).
//
// Both dictionaries may be extended by callers (via WithExtraShellCommands /
// WithExtraReservedWords on ScannerState) but every entry listed here is
// load-bearing and must never be removed.
var reservedKeywords = map[string]struct{}{
	"False":    {},
	"None":     {},
	"True":     {},
	"and":      {},
	"as":       {},
	"assert":   {},
	"async":    {},
	"await":    {},
	"break":    {},
	"class":    {},
	"continue": {},
	"def":      {},
	"del":      {},
	"elif":     {},
	"else":     {},
	"except":   {},
	"finally":  {},
	"for":      {},
	"from":     {},
	"global":   {},
	"if":       {},
	"import":   {},
	"in":       {},
	"is":       {},
	"lambda":   {},
	"nonlocal": {},
	"not":      {},
	"or":       {},
	"pass":     {},
	"raise":    {},
	"return":   {},
	"try":      {},
	"while":    {},
	"with":     {},
	"yield":    {},
	"xontrib":  {},
}

// shellCommands is a ~110-entry fixed dictionary of leading identifiers that
// make a bare line look like a shell command: core POSIX utilities, build
// tools, VCS clients, container/orchestration tools, network tools, archive
// tools, and editors. `p` is deliberately absent — see the "path-prefix vs.
// shell-command collision" decision recorded in DESIGN.md.
var shellCommands = map[string]struct{}{
	// core utilities
	"ls": {}, "cd": {}, "pwd": {}, "cp": {}, "mv": {}, "rm": {}, "mkdir": {},
	"rmdir": {}, "touch": {}, "cat": {}, "less": {}, "more": {}, "head": {},
	"tail": {}, "grep": {}, "egrep": {}, "fgrep": {}, "find": {}, "xargs": {},
	"sed": {}, "awk": {}, "sort": {}, "uniq": {}, "wc": {}, "cut": {},
	"tr": {}, "diff": {}, "patch": {}, "chmod": {}, "chown": {}, "chgrp": {},
	"ln": {}, "readlink": {}, "stat": {}, "file": {}, "du": {}, "df": {},
	"mount": {}, "umount": {}, "kill": {}, "killall": {}, "ps": {}, "top": {},
	"htop": {}, "which": {}, "whereis": {}, "echo": {}, "printf": {},
	"env": {}, "export": {}, "alias": {}, "unalias": {}, "source": {},
	"sudo": {}, "su": {}, "man": {}, "history": {}, "date": {}, "sleep": {},
	"yes": {}, "tee": {}, "xxd": {}, "od": {},

	// build tools
	"make": {}, "cmake": {}, "ninja": {}, "bazel": {}, "gradle": {},
	"mvn": {}, "cargo": {}, "go": {}, "npm": {}, "yarn": {}, "pnpm": {},
	"pip": {}, "pip3": {}, "python": {}, "python3": {}, "node": {},

	// vcs
	"git": {}, "hg": {}, "svn": {},

	// containers / orchestration
	"docker": {}, "podman": {}, "kubectl": {}, "helm": {}, "docker-compose": {},

	// network
	"curl": {}, "wget": {}, "ssh": {}, "scp": {}, "rsync": {}, "ping": {},
	"nc": {}, "dig": {}, "nslookup": {}, "ftp": {},

	// archives
	"tar": {}, "gzip": {}, "gunzip": {}, "zip": {}, "unzip": {}, "xz": {},

	// editors / shells
	"vim": {}, "vi": {}, "nano": {}, "emacs": {}, "bash": {}, "zsh": {},
	"sh": {}, "fish": {},
}

func isReservedKeyword(word string) bool {
	_, ok := reservedKeywords[word]
	return ok
}

func isKnownShellCommand(word string, extra map[string]struct{}) bool {
	if _, ok := shellCommands[word]; ok {
		return true
	}
	if extra != nil {
		if _, ok := extra[word]; ok {
			return true
		}
	}
	return false
}
