package domain

type TaskType string

const (
	TaskAssignment   TaskType = "assignment"
	TaskExam         TaskType = "exam"
	TaskQuiz         TaskType = "quiz"
	TaskProject      TaskType = "project"
	TaskPaper        TaskType = "paper"
	TaskHomework     TaskType = "homework"
	TaskLab          TaskType = "lab"
	TaskReading      TaskType = "reading"
	TaskDiscussion   TaskType = "discussion"
	TaskPresentation TaskType = "presentation"
)

// ValidTaskTypes is the canonical set of accepted task type strings.
var ValidTaskTypes = map[string]bool{
	"assignment": true, "exam": true, "quiz": true, "project": true,
	"paper": true, "homework": true, "lab": true, "reading": true,
	"discussion": true, "presentation": true,
}

type SessionType string

const (
	SessionNewMaterial SessionType = "new_material"
	SessionReview      SessionType = "review"
	SessionPractice    SessionType = "practice"
)

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionSkipped   SessionStatus = "skipped"
	SessionMissed    SessionStatus = "missed"
)

type OptimizationGoal string

const (
	GoalMaximizeRetention OptimizationGoal = "maximize_retention"
	GoalMeetDeadlines     OptimizationGoal = "meet_deadlines"
	GoalMinimizeStress    OptimizationGoal = "minimize_stress"
	GoalBalanceSubjects   OptimizationGoal = "balance_subjects"
	GoalFocusDifficult    OptimizationGoal = "focus_difficult"
)

// ValidGoals is the canonical set of accepted optimization goal strings.
var ValidGoals = map[string]bool{
	"maximize_retention": true, "meet_deadlines": true, "minimize_stress": true,
	"balance_subjects": true, "focus_difficult": true,
}
