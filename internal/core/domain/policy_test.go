package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanEditFinance(t *testing.T) {
	allowed := []Grade{GradeManager, GradeSeniorManager, GradePartner}
	for _, g := range allowed {
		assert.True(t, CanEditFinance(g), "grade %s should pass the finance gate", g)
	}

	denied := []Grade{GradeStagiaire, GradeJunior, GradeSenior, GradeDirector}
	for _, g := range denied {
		assert.False(t, CanEditFinance(g), "grade %s should not pass the finance gate", g)
	}
}

func TestCanEditFinanceFailsClosed(t *testing.T) {
	assert.False(t, CanEditFinance(""))
	assert.False(t, CanEditFinance(Grade("Intern")))
}

func TestCanViewAuditLog(t *testing.T) {
	assert.True(t, CanViewAuditLog(GradeManager))
	assert.True(t, CanViewAuditLog(GradePartner))
	assert.False(t, CanViewAuditLog(GradeJunior))
	assert.False(t, CanViewAuditLog(""))
}

func TestGradeIsValid(t *testing.T) {
	for _, g := range Grades {
		assert.True(t, g.IsValid())
	}
	assert.False(t, Grade("Associate").IsValid())
}

func TestStageIsValid(t *testing.T) {
	for _, s := range Stages {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Stage("archived").IsValid())
	assert.False(t, Stage("").IsValid())
}

func TestHourlyRates(t *testing.T) {
	assert.Equal(t, 100.0, HourlyRate(GradeJunior))
	assert.Equal(t, 140.0, HourlyRate(GradeSenior))
	assert.Equal(t, 200.0, HourlyRate(GradeManager))
	assert.Equal(t, 250.0, HourlyRate(GradeSeniorManager))
	assert.Equal(t, 300.0, HourlyRate(GradeDirector))
	assert.Equal(t, 400.0, HourlyRate(GradePartner))
	assert.Equal(t, 0.0, HourlyRate(GradeStagiaire))
	assert.Equal(t, 0.0, HourlyRate(""))
}
