// Command seev-verify checks a DRE-IP bulletin-board transcript against the
// signature, one-of-n vote proof, ballot equality proof, tally
// reconstruction, and audited-ballot checks (spec §6).
//
// Grounded on the teacher's cmd/cli/main.go flag style (pflag package-level
// vars, log.Init before any work, log.Fatalf on fatal setup errors).
package main

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/global-initiative/SEEV-verifier/engine"
	"github.com/global-initiative/SEEV-verifier/log"
	"github.com/global-initiative/SEEV-verifier/transcript"
)

const (
	exitSuccess           = 0
	exitCryptoFailure     = 1
	exitStructuralFailure = 2
)

var (
	logLevel = flag.String("log-level", log.LevelInfo, "log level (debug, info, warn, error)")
	output   = flag.String("output", "stderr", "log output (stdout, stderr, or a file path)")
)

func main() {
	flag.Parse()
	log.Init(*logLevel, *output)

	if flag.NArg() != 1 {
		log.Fatalf("usage: seev-verify [--log-level=info] [--output=stderr] <transcript.json>")
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Errorw(err, "reading transcript file", "path", path)
		os.Exit(exitStructuralFailure)
	}

	tr, err := transcript.Parse(data)
	if err != nil {
		log.Errorw(err, "parsing transcript")
		os.Exit(exitStructuralFailure)
	}

	result := engine.Verify(context.Background(), tr)

	printProgress(result)

	if result.Accepted() {
		fmt.Println("VERDICT: accepted")
		os.Exit(exitSuccess)
	}
	fmt.Println("VERDICT: rejected")
	os.Exit(exitCryptoFailure)
}

// printProgress reports one line per check family in the fixed order
// signature -> vote proof -> ballot equality -> tally -> audited (spec §6),
// evaluating every ballot and option so one bad entry never hides the rest.
func printProgress(result engine.Result) {
	allSignatures, allVoteProofs, allEquality, allAudited := true, true, true, true
	for _, b := range result.Ballots {
		allSignatures = allSignatures && b.Signature
		allEquality = allEquality && b.BallotEquality
		for _, vp := range b.VoteProof {
			allVoteProofs = allVoteProofs && vp.OK
		}
		if b.Audited != nil {
			allAudited = allAudited && *b.Audited
		}
	}
	allTally := true
	for _, o := range result.Options {
		allTally = allTally && o.Tally
	}

	fmt.Printf("signature:       %s\n", status(allSignatures))
	fmt.Printf("vote_proof:      %s\n", status(allVoteProofs))
	fmt.Printf("ballot_equality: %s\n", status(allEquality))
	fmt.Printf("tally:           %s\n", status(allTally))
	fmt.Printf("audited:         %s\n", status(allAudited))
}

func status(ok bool) string {
	if ok {
		return "ok"
	}
	return "FAIL"
}
