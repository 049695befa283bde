// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Answer is the predicate function for answer builders.
type Answer func(*sql.Selector)

// LLMCall is the predicate function for llmcall builders.
type LLMCall func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Review is the predicate function for review builders.
type Review func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
