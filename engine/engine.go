// Package engine orchestrates the five check families (spec §2/"Orchestration")
// over a parsed transcript and reports a full boolean result matrix: every
// check runs regardless of any other check's outcome (spec §7), so one
// forged ballot never hides the rest.
//
// Dispatch follows SPEC_FULL.md §5: per-ballot and per-option checks are
// embarrassingly parallel, so they are fanned out to a small worker pool
// sized to runtime.GOMAXPROCS(0) — a hand-rolled sync.WaitGroup + buffered
// channel semaphore, matching the teacher's own preference for a manual
// pool (sequencer/worker.go) over a third-party scheduler, though the pool
// here is generic rather than adapted line-for-line from that HTTP-job-specific
// file.
package engine

import (
	"context"
	"math/big"
	"runtime"
	"sync"

	"github.com/global-initiative/SEEV-verifier/audit"
	"github.com/global-initiative/SEEV-verifier/crypto/curve"
	"github.com/global-initiative/SEEV-verifier/crypto/eddsa"
	"github.com/global-initiative/SEEV-verifier/log"
	"github.com/global-initiative/SEEV-verifier/proof/equality"
	"github.com/global-initiative/SEEV-verifier/proof/oneofn"
	"github.com/global-initiative/SEEV-verifier/tally"
	"github.com/global-initiative/SEEV-verifier/transcript"
)

// BallotResult holds every per-ballot check outcome (spec §7's non-fatal
// result vectors). Audited is nil for ballots that carry no reveal.
type BallotResult struct {
	BallotID       *big.Int
	Signature      bool
	VoteProof      []OptionProofResult
	BallotEquality bool
	Audited        *bool
}

// OptionProofResult is one option's one-of-n proof outcome within a ballot.
type OptionProofResult struct {
	OptionID *big.Int
	OK       bool
}

// OptionResult holds a single option's tally-reconstruction outcome.
type OptionResult struct {
	OptionID *big.Int
	Tally    bool
}

// Result is the full boolean matrix the engine produces for one transcript.
type Result struct {
	Ballots []BallotResult
	Options []OptionResult
}

// Accepted reports whether every individual check across the whole
// transcript is true (spec §2: "ACCEPTED iff every individual check
// returns true").
func (r Result) Accepted() bool {
	for _, b := range r.Ballots {
		if !b.Signature || !b.BallotEquality {
			return false
		}
		for _, vp := range b.VoteProof {
			if !vp.OK {
				return false
			}
		}
		if b.Audited != nil && !*b.Audited {
			return false
		}
	}
	for _, o := range r.Options {
		if !o.Tally {
			return false
		}
	}
	return true
}

// Verify runs every check family across tr and returns the full result
// matrix. ctx carries only an optional caller-supplied deadline; the engine
// itself never creates one and never cancels a check mid-flight (spec §5).
func Verify(ctx context.Context, tr *transcript.Transcript) Result {
	_ = ctx // no cancellation semantics; threaded through for embedding callers only

	g1 := curve.Generator()
	g2 := tr.Election.G2
	electionID := tr.Election.ElectionID
	pubKey := tr.Election.PublicKey

	result := Result{
		Ballots: make([]BallotResult, len(tr.Ballots)),
		Options: make([]OptionResult, len(tr.Options)),
	}

	sem := make(chan struct{}, workerCount())
	var wg sync.WaitGroup

	for i, ballot := range tr.Ballots {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, ballot transcript.BallotReceipt) {
			defer wg.Done()
			defer func() { <-sem }()
			result.Ballots[i] = verifyBallot(electionID, g1, g2, pubKey, ballot)
		}(i, ballot)
	}

	for i, option := range tr.Options {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, option transcript.OptionEntry) {
			defer wg.Done()
			defer func() { <-sem }()
			rs, zs := tr.ConfirmedCiphertextsByOption(option.ID)
			result.Options[i] = OptionResult{
				OptionID: option.ID,
				Tally:    tally.Verify(g1, g2, rs, zs, option.Tally, option.Sum),
			}
		}(i, option)
	}

	wg.Wait()

	log.Infow("verification complete",
		"ballots", len(result.Ballots),
		"options", len(result.Options),
		"accepted", result.Accepted(),
	)

	return result
}

func verifyBallot(electionID *big.Int, g1, g2, pubKey *curve.Point, ballot transcript.BallotReceipt) BallotResult {
	br := BallotResult{BallotID: ballot.BallotID}

	br.Signature = eddsa.Verify(ballot.StageOne.RawData, ballot.StageOne.Signature, pubKey)

	vp := make([]OptionProofResult, 0, len(ballot.StageOne.OneOfN))
	rs := make([]*curve.Point, 0, len(ballot.StageOne.OneOfN))
	zs := make([]*curve.Point, 0, len(ballot.StageOne.OneOfN))
	for _, zkp := range ballot.StageOne.OneOfN {
		ok := oneofn.Verify(electionID, ballot.BallotID, ballot.Weight, g1, g2, zkp)
		vp = append(vp, OptionProofResult{OptionID: zkp.OptionID, OK: ok})
		rs = append(rs, zkp.R)
		zs = append(zs, zkp.Z)
	}
	br.VoteProof = vp

	br.BallotEquality = equality.Verify(electionID, ballot.BallotID, ballot.Weight, g1, g2, rs, zs, ballot.StageOne.Equality)

	if ballot.IsAudited && ballot.Reveal != nil {
		ok := audit.Verify(ballot.Weight, g1, g2, ballot.StageOne.OneOfN, *ballot.Reveal)
		br.Audited = &ok
	}

	return br
}

func workerCount() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	return n
}
