package verify

import (
	"os"

	"recon-setup/internal/logger"
	"recon-setup/internal/runner"
)

// Result records one probed tool: whether it resolved on PATH and where.
type Result struct {
	Name  string
	Found bool
	Path  string
}

// Report aggregates the verification outcome. Verification is advisory:
// a non-empty Missing list never aborts the process.
type Report struct {
	Results []Result
	Missing []string
}

// Ok reports whether every expected tool was found.
func (r Report) Ok() bool {
	return len(r.Missing) == 0
}

// Run probes PATH resolution for each expected tool name. EyeWitness is
// handled separately: it counts as present when either its entry script
// exists or an "eyewitness" alias resolves on PATH. Unlike the
// provisioning steps, every miss is tolerated and collected into the
// final report.
func Run(r runner.Runner, expected []string, entryScript string) Report {
	var rep Report
	for _, name := range expected {
		path, err := r.LookPath(name)
		if err != nil {
			rep.Results = append(rep.Results, Result{Name: name})
			rep.Missing = append(rep.Missing, name)
			continue
		}
		rep.Results = append(rep.Results, Result{Name: name, Found: true, Path: path})
	}

	ew := Result{Name: "eyewitness"}
	if _, err := os.Stat(entryScript); err == nil {
		ew.Found = true
		ew.Path = entryScript
	} else if path, err := r.LookPath("eyewitness"); err == nil {
		ew.Found = true
		ew.Path = path
	}
	rep.Results = append(rep.Results, ew)
	if !ew.Found {
		rep.Missing = append(rep.Missing, "eyewitness")
	}

	return rep
}

// Print writes the report as colored status lines.
func Print(rep Report) {
	logger.Info("[INFO] Verification report:\n")
	for _, res := range rep.Results {
		if res.Found {
			logger.Info("[INFO]   %-14s %s\n", res.Name, res.Path)
		} else {
			logger.Error("[ERROR]   %-14s missing\n", res.Name)
		}
	}
	if rep.Ok() {
		logger.Info("[INFO] All expected tools are installed.\n")
	} else {
		logger.Warn("[WARN] %d tool(s) missing: %v\n", len(rep.Missing), rep.Missing)
	}
}
