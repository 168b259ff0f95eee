package entity

import "math/big"

// Stage identifies one step of the wallet lifecycle.
type Stage int

const (
	StageIdentity Stage = iota
	StageIdempotencyCheck
	StageMintPrimary
	StagePurchaseAccessory
	StageAttachAccessory
	StageBreed
	StageList
	StageBatchMintExamples
)

var stageNames = map[Stage]string{
	StageIdentity:          "identity",
	StageIdempotencyCheck:  "idempotency_check",
	StageMintPrimary:       "mint_primary",
	StagePurchaseAccessory: "purchase_accessory",
	StageAttachAccessory:   "attach_accessory",
	StageBreed:             "breed",
	StageList:              "list",
	StageBatchMintExamples: "batch_mint_examples",
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Outcome is the terminal state of one wallet run.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

// PipelineResult is the per-wallet outcome. It is owned by the wallet run that produced it.
type PipelineResult struct {
	WalletLine     int           `json:"walletLine"`
	Address        string        `json:"address"`
	Balance        *big.Int      `json:"-"`
	BalanceText    string        `json:"balance"`
	Outcome        Outcome       `json:"outcome"`
	FailedStage    *Stage        `json:"-"`
	Err            error         `json:"-"`
	CoreSkipped    bool          `json:"coreSkipped"`
	MintedAssets   []AssetHandle `json:"mintedAssets,omitempty"`
	Accessory      AssetHandle   `json:"accessory,omitempty"`
	AccessoryName  string        `json:"accessoryName,omitempty"`
	ChildAsset     AssetHandle   `json:"childAsset,omitempty"`
	ListedAsset    AssetHandle   `json:"listedAsset,omitempty"`
	ListingPrice   string        `json:"listingPrice,omitempty"`
	ExamplesMinted int           `json:"examplesMinted"`
}

// Succeeded reports whether the pipeline ran to completion.
func (r PipelineResult) Succeeded() bool {
	return r.Outcome == OutcomeSucceeded
}

// Fail marks the result as failed at stage.
func (r *PipelineResult) Fail(stage Stage, err error) {
	s := stage
	r.Outcome = OutcomeFailed
	r.FailedStage = &s
	r.Err = &StageError{Stage: stage, Err: err}
}

// ErrorMessage returns the captured failure description, or "" on success.
func (r PipelineResult) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
