// Package transcript parses a bulletin-board snapshot (spec §6) into the
// in-memory types the cryptographic checks operate on. Parsing is the one
// fatal-error boundary in the system (spec §7): everything past
// transcript.Parse returns bool results, never errors.
//
// Grounded on original_source/seev_verifier_lib/verifier_lib.py's loaders
// (load_election_context, load_ballots, load_tally_data) for field naming
// and the state==2/"confirmed" grouping convention, and on the teacher's
// types.BigInt (types/bigint.go) for decimal-string-or-number JSON fields.
package transcript

import (
	"encoding/json"
	"fmt"
	"strings"

	"math/big"

	"github.com/global-initiative/SEEV-verifier/audit"
	"github.com/global-initiative/SEEV-verifier/crypto/curve"
	"github.com/global-initiative/SEEV-verifier/crypto/serialize"
	"github.com/global-initiative/SEEV-verifier/proof/equality"
	"github.com/global-initiative/SEEV-verifier/proof/oneofn"
	"github.com/global-initiative/SEEV-verifier/types"
)

// StructuralError is the fatal error taxonomy of spec §7: anything that
// prevents the transcript from being built at all (malformed JSON, bad
// base64, an election-context point that fails curve validation). It is
// always returned wrapping the underlying cause.
type StructuralError struct {
	Context string
	Err     error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error: %s: %v", e.Context, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

func structuralf(context string, err error) error {
	return &StructuralError{Context: context, Err: err}
}

// ElectionContext is spec §3's ElectionContext entity.
type ElectionContext struct {
	ElectionID *big.Int
	PublicKey  *curve.Point
	G2         *curve.Point
}

// StageOne is spec §3's StageOne entity. RawData is the exact byte span of
// stage_one_data as it appeared in the document (spec §4.2/§9) and is never
// re-marshaled.
type StageOne struct {
	RawData   json.RawMessage
	Signature []byte
	Equality  equality.Proof
	OneOfN    []oneofn.ZKP
}

// BallotReceipt is spec §3's BallotReceipt entity. Reveal is non-nil only
// for audited ballots (spec §4.8, resolved in SPEC_FULL.md §4.8a).
type BallotReceipt struct {
	BallotID  *big.Int
	Weight    *big.Int
	State     int
	StageOne  StageOne
	Reveal    *audit.Reveal
	IsAudited bool
}

// Confirmed reports whether the ballot is included in the tally (spec
// §4.7/glossary: state == 2).
func (b BallotReceipt) Confirmed() bool { return b.State == 2 }

// OptionEntry is spec §3's OptionEntry entity.
type OptionEntry struct {
	ID    *big.Int
	Tally *big.Int
	Sum   *big.Int
}

// Transcript is the aggregate root (SPEC_FULL.md §3): it owns the
// ElectionContext, the ballot list, and the option list. Nothing mutates it
// after Parse returns.
type Transcript struct {
	Election ElectionContext
	Ballots  []BallotReceipt
	Options  []OptionEntry
}

type wireTranscript struct {
	ElectionContext wireElectionContext `json:"election_context"`
	BallotSet       []wireBallot        `json:"ballot_set"`
	OptionSet       []wireOption        `json:"option_set"`
}

type wireElectionContext struct {
	ElectionID      types.BigInt `json:"election_id"`
	PublicKey       string       `json:"public_key"`
	UniqueGenerator string       `json:"unique_generator"`
}

type wireBallot struct {
	BallotID  types.BigInt    `json:"ballot_id"`
	Weight    types.BigInt    `json:"weight"`
	State     int             `json:"state"`
	StageOne  wireStageOne    `json:"stage_one"`
	AuditData *wireAuditData  `json:"audit_reveal,omitempty"`
}

type wireStageOne struct {
	StageOneData      json.RawMessage `json:"stage_one_data"`
	StageOneSignature string          `json:"stage_one_signature"`
}

// wireStageOneData mirrors the signed subtree's structure so it can be
// decoded separately from the raw bytes fed to the signature verifier.
type wireStageOneData struct {
	EqualityZKP wireEqualityZKP  `json:"equality_zkp"`
	OneOfNZKPs  []wireOneOfNZKP  `json:"one_of_n_zkps"`
}

type wireEqualityZKP struct {
	Result       string `json:"result"`
	Commitment1  string `json:"commitment_1"`
	Commitment2  string `json:"commitment_2"`
}

type wireOneOfNZKP struct {
	OptionID      types.BigInt `json:"option_id"`
	CyphertextR   string       `json:"cyphertext_R"`
	CyphertextZ   string       `json:"cyphertext_Z"`
	CommitmentsA  [2]string    `json:"commitments_A"`
	CommitmentsB  [2]string    `json:"commitments_B"`
	ResultRI      [2]string    `json:"result_r_i"`
	ResultDI      [2]string    `json:"result_d_i"`
}

// wireAuditData is the audited-ballot reveal (SPEC_FULL.md §4.8a): the
// format is not specified by spec.md (flagged as an Open Question in §9),
// so field names here follow the transcript's own snake_case convention.
type wireAuditData struct {
	SelectedOptionID types.BigInt         `json:"selected_option_id"`
	Randomness       map[string]string    `json:"randomness"`
}

type wireOption struct {
	ID    types.BigInt `json:"id"`
	Tally types.BigInt `json:"tally"`
	Sum   types.BigInt `json:"sum"`
}

// Parse decodes a bulletin-board transcript document, validating every
// point and scalar it carries. It returns a *StructuralError (wrapped) on
// any malformed input; it never panics.
func Parse(data []byte) (*Transcript, error) {
	var wire wireTranscript
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, structuralf("decoding transcript JSON", err)
	}

	electionID := wire.ElectionContext.ElectionID.Int()

	pubKey, err := serialize.PublicKeyFromString(wire.ElectionContext.PublicKey)
	if err != nil {
		return nil, structuralf("parsing election public key", err)
	}
	if !pubKey.Valid() {
		return nil, structuralf("validating election public key", fmt.Errorf("point invalid or at infinity"))
	}

	g2, err := serialize.PointFromString(wire.ElectionContext.UniqueGenerator)
	if err != nil {
		return nil, structuralf("parsing unique_generator", err)
	}
	if !g2.Valid() {
		return nil, structuralf("validating unique_generator", fmt.Errorf("point invalid or at infinity"))
	}

	ballots := make([]BallotReceipt, 0, len(wire.BallotSet))
	for i, wb := range wire.BallotSet {
		ballot, err := parseBallot(wb)
		if err != nil {
			return nil, structuralf(fmt.Sprintf("parsing ballot_set[%d]", i), err)
		}
		ballots = append(ballots, ballot)
	}

	options := make([]OptionEntry, 0, len(wire.OptionSet))
	for _, wo := range wire.OptionSet {
		options = append(options, OptionEntry{
			ID:    wo.ID.Int(),
			Tally: wo.Tally.Int(),
			Sum:   wo.Sum.Int(),
		})
	}

	return &Transcript{
		Election: ElectionContext{ElectionID: electionID, PublicKey: pubKey, G2: g2},
		Ballots:  ballots,
		Options:  options,
	}, nil
}

func parseBallot(wb wireBallot) (BallotReceipt, error) {
	sig, err := serialize.SignatureFromBase64(wb.StageOne.StageOneSignature)
	if err != nil {
		return BallotReceipt{}, fmt.Errorf("decoding stage_one_signature: %w", err)
	}

	var data wireStageOneData
	if err := json.Unmarshal(wb.StageOne.StageOneData, &data); err != nil {
		return BallotReceipt{}, fmt.Errorf("decoding stage_one_data: %w", err)
	}

	eq, err := parseEqualityZKP(data.EqualityZKP)
	if err != nil {
		return BallotReceipt{}, fmt.Errorf("parsing equality_zkp: %w", err)
	}

	zkps := make([]oneofn.ZKP, 0, len(data.OneOfNZKPs))
	for i, wz := range data.OneOfNZKPs {
		zkp, err := parseOneOfNZKP(wz)
		if err != nil {
			return BallotReceipt{}, fmt.Errorf("parsing one_of_n_zkps[%d]: %w", i, err)
		}
		zkps = append(zkps, zkp)
	}

	receipt := BallotReceipt{
		BallotID: wb.BallotID.Int(),
		Weight:   wb.Weight.Int(),
		State:    wb.State,
		StageOne: StageOne{
			RawData:   append(json.RawMessage(nil), wb.StageOne.StageOneData...),
			Signature: sig,
			Equality:  eq,
			OneOfN:    zkps,
		},
	}

	if wb.AuditData != nil {
		reveal, err := parseAuditReveal(*wb.AuditData)
		if err != nil {
			return BallotReceipt{}, fmt.Errorf("parsing audit_reveal: %w", err)
		}
		receipt.Reveal = &reveal
		receipt.IsAudited = true
	}

	return receipt, nil
}

func parseEqualityZKP(w wireEqualityZKP) (equality.Proof, error) {
	s, err := scalarFromString(w.Result)
	if err != nil {
		return equality.Proof{}, fmt.Errorf("parsing result: %w", err)
	}
	c1, err := serialize.PointFromString(w.Commitment1)
	if err != nil {
		return equality.Proof{}, fmt.Errorf("parsing commitment_1: %w", err)
	}
	c2, err := serialize.PointFromString(w.Commitment2)
	if err != nil {
		return equality.Proof{}, fmt.Errorf("parsing commitment_2: %w", err)
	}
	return equality.Proof{S: s, Commitment1: c1, Commitment2: c2}, nil
}

func parseOneOfNZKP(w wireOneOfNZKP) (oneofn.ZKP, error) {
	r, err := serialize.PointFromString(w.CyphertextR)
	if err != nil {
		return oneofn.ZKP{}, fmt.Errorf("parsing cyphertext_R: %w", err)
	}
	z, err := serialize.PointFromString(w.CyphertextZ)
	if err != nil {
		return oneofn.ZKP{}, fmt.Errorf("parsing cyphertext_Z: %w", err)
	}
	a1, err := serialize.PointFromString(w.CommitmentsA[0])
	if err != nil {
		return oneofn.ZKP{}, fmt.Errorf("parsing commitments_A[0]: %w", err)
	}
	a2, err := serialize.PointFromString(w.CommitmentsA[1])
	if err != nil {
		return oneofn.ZKP{}, fmt.Errorf("parsing commitments_A[1]: %w", err)
	}
	b1, err := serialize.PointFromString(w.CommitmentsB[0])
	if err != nil {
		return oneofn.ZKP{}, fmt.Errorf("parsing commitments_B[0]: %w", err)
	}
	b2, err := serialize.PointFromString(w.CommitmentsB[1])
	if err != nil {
		return oneofn.ZKP{}, fmt.Errorf("parsing commitments_B[1]: %w", err)
	}
	r1, err := scalarFromString(w.ResultRI[0])
	if err != nil {
		return oneofn.ZKP{}, fmt.Errorf("parsing result_r_i[0]: %w", err)
	}
	r2, err := scalarFromString(w.ResultRI[1])
	if err != nil {
		return oneofn.ZKP{}, fmt.Errorf("parsing result_r_i[1]: %w", err)
	}
	d1, err := scalarFromString(w.ResultDI[0])
	if err != nil {
		return oneofn.ZKP{}, fmt.Errorf("parsing result_d_i[0]: %w", err)
	}
	d2, err := scalarFromString(w.ResultDI[1])
	if err != nil {
		return oneofn.ZKP{}, fmt.Errorf("parsing result_d_i[1]: %w", err)
	}

	return oneofn.ZKP{
		OptionID: w.OptionID.Int(),
		R:        r,
		Z:        z,
		A1:       a1,
		A2:       a2,
		B1:       b1,
		B2:       b2,
		R1:       r1,
		R2:       r2,
		D1:       d1,
		D2:       d2,
	}, nil
}

func parseAuditReveal(w wireAuditData) (audit.Reveal, error) {
	randomness := make(map[string]*big.Int, len(w.Randomness))
	for optionID, rhoStr := range w.Randomness {
		rho, err := scalarFromString(rhoStr)
		if err != nil {
			return audit.Reveal{}, fmt.Errorf("parsing randomness[%s]: %w", optionID, err)
		}
		randomness[optionID] = rho
	}
	return audit.Reveal{
		SelectedOptionID: w.SelectedOptionID.Int(),
		Randomness:       randomness,
	}, nil
}

func scalarFromString(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, ok := new(big.Int).SetString(s[2:], 16)
		if !ok {
			return nil, fmt.Errorf("invalid hex scalar %q", s)
		}
		return n, nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal scalar %q", s)
	}
	return n, nil
}

// ConfirmedCiphertextsByOption gathers the (R, Z) pairs every confirmed
// (state == 2) ballot contributed for optionID, mirroring
// original_source/seev_verifier_lib/verifier_lib.py's load_tally_data
// index_map grouping (SPEC_FULL.md §3). Ballots with no proof for optionID
// are skipped, not treated as zero contributions.
func (t *Transcript) ConfirmedCiphertextsByOption(optionID *big.Int) (rs, zs []*curve.Point) {
	for _, b := range t.Ballots {
		if !b.Confirmed() {
			continue
		}
		for _, zkp := range b.StageOne.OneOfN {
			if zkp.OptionID.Cmp(optionID) == 0 {
				rs = append(rs, zkp.R)
				zs = append(zs, zkp.Z)
			}
		}
	}
	return rs, zs
}
