package dto

type CompanyRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
	ContactNumber string `json:"contact_number"`
}

type CourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	CompanyID   uint   `json:"company_id" binding:"required"`
}

type TrainingRequest struct {
	TrainingName string `json:"training_name" binding:"required"`
	CourseID     uint   `json:"course_id" binding:"required"`
	FromDate     string `json:"from_date" binding:"required,datetime=2006-01-02"`
	ToDate       string `json:"to_date" binding:"required,datetime=2006-01-02"`
	TrainingType string `json:"training_type" binding:"required,oneof=Online Offline"`
	FacultyID    uint   `json:"faculty_id" binding:"required"`
	CompanyID    uint   `json:"company_id" binding:"required"`
}

type UserCreateRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	RoleID    uint   `json:"role_id" binding:"required,oneof=1 2 3"`
	CompanyID uint   `json:"company_id"`
}

type UserUpdateRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	RoleID    uint   `json:"role_id" binding:"required,oneof=1 2 3"`
	CompanyID uint   `json:"company_id"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	RoleID    uint   `json:"role_id"`
	CompanyID uint   `json:"company_id"`
}

type RoleRequest struct {
	Name string `json:"name" binding:"required"`
}
