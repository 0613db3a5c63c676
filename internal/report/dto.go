package report

type ByGenderRequest struct {
	Gender string `json:"gender" binding:"required"`
}

type GroupsRequest struct {
	CourseTitle string `json:"course_title" binding:"required"`
	GroupSize   int    `json:"group_size" binding:"required,gt=0"`
}
