package apierrors

const (
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailCompleteStep   = "failCompleteStep"
	MsgFailListSteps      = "failListSteps"
	MsgFailCreateStep     = "failCreateStep"
	MsgFailListProjects   = "failListProjects"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidStepPayload = "invalidStepPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgProjectNotFound    = "projectNotFound"
	MsgMethodNotAllowed   = "methodNotAllowed"
	MsgRouteNotFound      = "routeNotFound"
)
