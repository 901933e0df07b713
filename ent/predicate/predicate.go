// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentSession is the predicate function for agentsession builders.
type AgentSession func(*sql.Selector)

// AgentSubscription is the predicate function for agentsubscription builders.
type AgentSubscription func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// WorkEvent is the predicate function for workevent builders.
type WorkEvent func(*sql.Selector)

// WorkRequest is the predicate function for workrequest builders.
type WorkRequest func(*sql.Selector)

// WorkTicket is the predicate function for workticket builders.
type WorkTicket func(*sql.Selector)
