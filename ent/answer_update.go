// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/nandita/prepwise/ent/answer"
	"github.com/nandita/prepwise/ent/predicate"
)

// AnswerUpdate is the builder for updating Answer entities.
type AnswerUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerMutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdate) Where(ps ...predicate.Answer) *AnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AnswerUpdate) SetUserAnswer(v string) *AnswerUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableUserAnswer(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AnswerUpdate) SetScore(v int) *AnswerUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableScore(v *int) *AnswerUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AnswerUpdate) AddScore(v int) *AnswerUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *AnswerUpdate) ClearScore() *AnswerUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *AnswerUpdate) SetFeedback(v string) *AnswerUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableFeedback(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *AnswerUpdate) SetStrengths(v []string) *AnswerUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *AnswerUpdate) AppendStrengths(v []string) *AnswerUpdate {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *AnswerUpdate) ClearStrengths() *AnswerUpdate {
	_u.mutation.ClearStrengths()
	return _u
}

// SetImprovements sets the "improvements" field.
func (_u *AnswerUpdate) SetImprovements(v []string) *AnswerUpdate {
	_u.mutation.SetImprovements(v)
	return _u
}

// AppendImprovements appends value to the "improvements" field.
func (_u *AnswerUpdate) AppendImprovements(v []string) *AnswerUpdate {
	_u.mutation.AppendImprovements(v)
	return _u
}

// ClearImprovements clears the value of the "improvements" field.
func (_u *AnswerUpdate) ClearImprovements() *AnswerUpdate {
	_u.mutation.ClearImprovements()
	return _u
}

// SetAnswerMethod sets the "answer_method" field.
func (_u *AnswerUpdate) SetAnswerMethod(v string) *AnswerUpdate {
	_u.mutation.SetAnswerMethod(v)
	return _u
}

// SetNillableAnswerMethod sets the "answer_method" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableAnswerMethod(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetAnswerMethod(*v)
	}
	return _u
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (_u *AnswerUpdate) SetTimeTakenSeconds(v int) *AnswerUpdate {
	_u.mutation.ResetTimeTakenSeconds()
	_u.mutation.SetTimeTakenSeconds(v)
	return _u
}

// SetNillableTimeTakenSeconds sets the "time_taken_seconds" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableTimeTakenSeconds(v *int) *AnswerUpdate {
	if v != nil {
		_u.SetTimeTakenSeconds(*v)
	}
	return _u
}

// AddTimeTakenSeconds adds value to the "time_taken_seconds" field.
func (_u *AnswerUpdate) AddTimeTakenSeconds(v int) *AnswerUpdate {
	_u.mutation.AddTimeTakenSeconds(v)
	return _u
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdate) Mutation() *AnswerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdate) check() error {
	if v, ok := _u.mutation.UserAnswer(); ok {
		if err := answer.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "Answer.user_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(answer.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(answer.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(answer.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(answer.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(answer.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(answer.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answer.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(answer.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Improvements(); ok {
		_spec.SetField(answer.FieldImprovements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImprovements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answer.FieldImprovements, value)
		})
	}
	if _u.mutation.ImprovementsCleared() {
		_spec.ClearField(answer.FieldImprovements, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnswerMethod(); ok {
		_spec.SetField(answer.FieldAnswerMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeTakenSeconds(); ok {
		_spec.SetField(answer.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSeconds(); ok {
		_spec.AddField(answer.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerUpdateOne is the builder for updating a single Answer entity.
type AnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerMutation
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AnswerUpdateOne) SetUserAnswer(v string) *AnswerUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableUserAnswer(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AnswerUpdateOne) SetScore(v int) *AnswerUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableScore(v *int) *AnswerUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AnswerUpdateOne) AddScore(v int) *AnswerUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *AnswerUpdateOne) ClearScore() *AnswerUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *AnswerUpdateOne) SetFeedback(v string) *AnswerUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableFeedback(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *AnswerUpdateOne) SetStrengths(v []string) *AnswerUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *AnswerUpdateOne) AppendStrengths(v []string) *AnswerUpdateOne {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *AnswerUpdateOne) ClearStrengths() *AnswerUpdateOne {
	_u.mutation.ClearStrengths()
	return _u
}

// SetImprovements sets the "improvements" field.
func (_u *AnswerUpdateOne) SetImprovements(v []string) *AnswerUpdateOne {
	_u.mutation.SetImprovements(v)
	return _u
}

// AppendImprovements appends value to the "improvements" field.
func (_u *AnswerUpdateOne) AppendImprovements(v []string) *AnswerUpdateOne {
	_u.mutation.AppendImprovements(v)
	return _u
}

// ClearImprovements clears the value of the "improvements" field.
func (_u *AnswerUpdateOne) ClearImprovements() *AnswerUpdateOne {
	_u.mutation.ClearImprovements()
	return _u
}

// SetAnswerMethod sets the "answer_method" field.
func (_u *AnswerUpdateOne) SetAnswerMethod(v string) *AnswerUpdateOne {
	_u.mutation.SetAnswerMethod(v)
	return _u
}

// SetNillableAnswerMethod sets the "answer_method" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableAnswerMethod(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetAnswerMethod(*v)
	}
	return _u
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (_u *AnswerUpdateOne) SetTimeTakenSeconds(v int) *AnswerUpdateOne {
	_u.mutation.ResetTimeTakenSeconds()
	_u.mutation.SetTimeTakenSeconds(v)
	return _u
}

// SetNillableTimeTakenSeconds sets the "time_taken_seconds" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableTimeTakenSeconds(v *int) *AnswerUpdateOne {
	if v != nil {
		_u.SetTimeTakenSeconds(*v)
	}
	return _u
}

// AddTimeTakenSeconds adds value to the "time_taken_seconds" field.
func (_u *AnswerUpdateOne) AddTimeTakenSeconds(v int) *AnswerUpdateOne {
	_u.mutation.AddTimeTakenSeconds(v)
	return _u
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdateOne) Mutation() *AnswerMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdateOne) Where(ps ...predicate.Answer) *AnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerUpdateOne) Select(field string, fields ...string) *AnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Answer entity.
func (_u *AnswerUpdateOne) Save(ctx context.Context) (*Answer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdateOne) SaveX(ctx context.Context) *Answer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdateOne) check() error {
	if v, ok := _u.mutation.UserAnswer(); ok {
		if err := answer.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "Answer.user_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerUpdateOne) sqlSave(ctx context.Context) (_node *Answer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Answer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answer.FieldID)
		for _, f := range fields {
			if !answer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answer.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(answer.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(answer.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(answer.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(answer.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(answer.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(answer.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answer.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(answer.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Improvements(); ok {
		_spec.SetField(answer.FieldImprovements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImprovements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answer.FieldImprovements, value)
		})
	}
	if _u.mutation.ImprovementsCleared() {
		_spec.ClearField(answer.FieldImprovements, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnswerMethod(); ok {
		_spec.SetField(answer.FieldAnswerMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeTakenSeconds(); ok {
		_spec.SetField(answer.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSeconds(); ok {
		_spec.AddField(answer.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	_node = &Answer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
