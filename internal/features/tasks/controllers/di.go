package tasks_controllers

import (
	tasks_services "teamboard/internal/features/tasks/services"
)

var taskController = &TaskController{
	taskService: tasks_services.GetTaskService(),
}

func GetTaskController() *TaskController {
	return taskController
}
