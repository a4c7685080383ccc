package model

import (
	"time"

	"github.com/fluidattacks/roots/pkg/domain/types"
)

// RootAction is a lifecycle transition recorded in the audit sink.
type RootAction string

const (
	RootActionAdd        RootAction = "add"
	RootActionUpdate     RootAction = "update"
	RootActionActivate   RootAction = "activate"
	RootActionDeactivate RootAction = "deactivate"
	RootActionMove       RootAction = "move"
	RootActionSync       RootAction = "sync"
)

// RootEvent is one successful lifecycle transition, appended to the
// BigQuery audit table.
type RootEvent struct {
	ID        types.RequestID `bigquery:"id" json:"id"`
	Timestamp time.Time       `bigquery:"timestamp" json:"timestamp"`
	Action    RootAction      `bigquery:"action" json:"action"`
	GroupID   types.GroupID   `bigquery:"group_id" json:"group_id"`
	RootID    types.RootID    `bigquery:"root_id" json:"root_id"`
	RootKind  types.RootKind  `bigquery:"root_kind" json:"root_kind"`
	Nickname  types.Nickname  `bigquery:"nickname" json:"nickname"`

	// Populated on deactivation: findings closed as a consequence.
	ClosedSAST int `bigquery:"closed_sast" json:"closed_sast"`
	ClosedDAST int `bigquery:"closed_dast" json:"closed_dast"`

	// Populated on move.
	TargetGroup types.GroupID `bigquery:"target_group" json:"target_group"`
}

// RootEventRawRecord flattens the timestamp for BigQuery insertion.
type RootEventRawRecord struct {
	RootEvent
	Timestamp int64 `bigquery:"timestamp" json:"timestamp"`
}
