// Code generated by ent, DO NOT EDIT.

package review

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nandita/prepwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldSessionID, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldOverallScore, v))
}

// Analysis applies equality check predicate on the "analysis" field. It's identical to AnalysisEQ.
func Analysis(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldAnalysis, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldSessionID, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v int) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v int) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v int) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v int) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldOverallScore, v))
}

// StrengthsIsNil applies the IsNil predicate on the "strengths" field.
func StrengthsIsNil() predicate.Review {
	return predicate.Review(sql.FieldIsNull(FieldStrengths))
}

// StrengthsNotNil applies the NotNil predicate on the "strengths" field.
func StrengthsNotNil() predicate.Review {
	return predicate.Review(sql.FieldNotNull(FieldStrengths))
}

// WeaknessesIsNil applies the IsNil predicate on the "weaknesses" field.
func WeaknessesIsNil() predicate.Review {
	return predicate.Review(sql.FieldIsNull(FieldWeaknesses))
}

// WeaknessesNotNil applies the NotNil predicate on the "weaknesses" field.
func WeaknessesNotNil() predicate.Review {
	return predicate.Review(sql.FieldNotNull(FieldWeaknesses))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.Review {
	return predicate.Review(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.Review {
	return predicate.Review(sql.FieldNotNull(FieldRecommendations))
}

// AnalysisEQ applies the EQ predicate on the "analysis" field.
func AnalysisEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldAnalysis, v))
}

// AnalysisNEQ applies the NEQ predicate on the "analysis" field.
func AnalysisNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldAnalysis, v))
}

// AnalysisIn applies the In predicate on the "analysis" field.
func AnalysisIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldAnalysis, vs...))
}

// AnalysisNotIn applies the NotIn predicate on the "analysis" field.
func AnalysisNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldAnalysis, vs...))
}

// AnalysisGT applies the GT predicate on the "analysis" field.
func AnalysisGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldAnalysis, v))
}

// AnalysisGTE applies the GTE predicate on the "analysis" field.
func AnalysisGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldAnalysis, v))
}

// AnalysisLT applies the LT predicate on the "analysis" field.
func AnalysisLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldAnalysis, v))
}

// AnalysisLTE applies the LTE predicate on the "analysis" field.
func AnalysisLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldAnalysis, v))
}

// AnalysisContains applies the Contains predicate on the "analysis" field.
func AnalysisContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldAnalysis, v))
}

// AnalysisHasPrefix applies the HasPrefix predicate on the "analysis" field.
func AnalysisHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldAnalysis, v))
}

// AnalysisHasSuffix applies the HasSuffix predicate on the "analysis" field.
func AnalysisHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldAnalysis, v))
}

// AnalysisEqualFold applies the EqualFold predicate on the "analysis" field.
func AnalysisEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldAnalysis, v))
}

// AnalysisContainsFold applies the ContainsFold predicate on the "analysis" field.
func AnalysisContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldAnalysis, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Review) predicate.Review {
	return predicate.Review(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Review) predicate.Review {
	return predicate.Review(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Review) predicate.Review {
	return predicate.Review(sql.NotPredicates(p))
}
