// ABOUTME: Tests for the profile creation wizard
// ABOUTME: Exercises step advancement and the collected inputs per role

package wizard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillserve/marketplace-cli/internal/client"
	"github.com/skillserve/marketplace-cli/internal/session"
)

func testTypes() *client.ServiceTypes {
	return &client.ServiceTypes{
		HomeServices:  []string{"cleaning", "plumber"},
		TutorSubjects: []string{"mathematics", "music"},
	}
}

func TestWorkerStepsAndCompletion(t *testing.T) {
	w := New(session.RoleWorker, testTypes())
	w.Init()

	assert.Equal(t, workerSteps, w.stepNames())

	w.category = "plumber"
	w.price = "400"
	model, _ := w.advanceStep()
	w = model.(*Wizard)
	assert.Equal(t, 2, w.step)

	_, cmd := w.advanceStep()
	require.NotNil(t, cmd)

	msg := cmd().(WizardCompleteMsg)
	require.NotNil(t, msg.Worker)
	assert.Nil(t, msg.Tutor)
	assert.Equal(t, "plumber", msg.Worker.ServiceType)
	assert.Equal(t, 400.0, msg.Worker.Price)
}

func TestTutorStepsAndCompletion(t *testing.T) {
	w := New(session.RoleTutor, testTypes())
	w.Init()

	assert.Equal(t, tutorSteps, w.stepNames())

	w.category = "mathematics"
	model, _ := w.advanceStep()
	w = model.(*Wizard)

	w.qualification = "MSc Mathematics"
	w.experience = "Six years teaching high school students."
	w.price = "800"
	model, _ = w.advanceStep()
	w = model.(*Wizard)
	assert.Equal(t, 3, w.step)

	w.transcript = "Today we will factor quadratics..."
	_, cmd := w.advanceStep()
	require.NotNil(t, cmd)

	msg := cmd().(WizardCompleteMsg)
	require.NotNil(t, msg.Tutor)
	assert.Nil(t, msg.Worker)
	assert.Equal(t, "mathematics", msg.Tutor.Subject)
	assert.Equal(t, 800.0, msg.Tutor.Price)
	assert.Equal(t, "MSc Mathematics", msg.Tutor.QualificationText)
	assert.NotEmpty(t, msg.Tutor.DemoTranscript)
}

func TestEscCancels(t *testing.T) {
	w := New(session.RoleWorker, testTypes())
	w.Init()

	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	_, ok := cmd().(WizardCancelledMsg)
	assert.True(t, ok)
}

func TestValidators(t *testing.T) {
	assert.Error(t, validatePrice("abc"))
	assert.Error(t, validatePrice("-5"))
	assert.NoError(t, validatePrice("500"))

	assert.Error(t, validateTranscript("  "))
	assert.NoError(t, validateTranscript("Today we cover fractions."))
}

func TestProgressRendersStepNames(t *testing.T) {
	w := New(session.RoleTutor, testTypes())
	w.SetWidth(80)

	view := w.renderProgress()
	assert.Contains(t, view, "Subject")
	assert.Contains(t, view, "Qualifications")
	assert.Contains(t, view, "Demo lesson")
}
