// SPDX-License-Identifier: EPL-2.0

package lectorx

import "fmt"

// Stage names a step of the extraction pipeline.
type Stage string

const (
	StageLoad    Stage = "load"
	StageLag     Stage = "lag"
	StageAlign   Stage = "align"
	StageGain    Stage = "gain"
	StageCombine Stage = "combine"
	StageStore   Stage = "store"
)

// StageError reports which pipeline step failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}
