package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type StudentTrainingRequest struct {
	TrainingID uint   `json:"training_id" binding:"required"`
	StudentIDs []uint `json:"student_ids" binding:"required,min=1,dive,gt=0"`
}

// StudentTrainingSyncRequest replaces the whole mapped set of a training;
// an empty list unmaps everybody.
type StudentTrainingSyncRequest struct {
	TrainingID uint   `json:"training_id" binding:"required"`
	StudentIDs []uint `json:"student_ids" binding:"dive,gt=0"`
}

type AttendanceRecordRequest struct {
	StudentID      uint   `json:"student_id" binding:"required"`
	CourseID       uint   `json:"course_id" binding:"required"`
	TrainingID     uint   `json:"training_id" binding:"required"`
	AttendanceDate string `json:"attendance_date" binding:"required,datetime=2006-01-02"`
	Status         string `json:"status" binding:"required,oneof=present absent"`
}

type AttendanceUpdateRequest struct {
	ID uint `json:"id" binding:"required"`
	AttendanceRecordRequest
}

type ReportRequest struct {
	ID   uint   `json:"id" binding:"required"`
	Type string `json:"type" binding:"required,oneof=student training course company"`
}

type MaterialUploadRequest struct {
	TrainingID   uint   `form:"training_id" binding:"required"`
	FacultyID    uint   `form:"faculty_id" binding:"required"`
	MaterialName string `form:"material_name" binding:"required"`
	TrainingDate string `form:"training_date" binding:"required,datetime=2006-01-02"`
}

type StudentDocumentUploadRequest struct {
	StudentID   uint   `form:"student_id" binding:"required"`
	CourseID    uint   `form:"course_id" binding:"required"`
	ProjectType string `form:"project_type"`
}

// StudentDocumentUpdateRequest edits the metadata of a document; the stored
// file itself only changes through a new upload.
type StudentDocumentUpdateRequest struct {
	StudentID    uint   `json:"student_id" binding:"required"`
	CourseID     uint   `json:"course_id" binding:"required"`
	DocumentName string `json:"document_name" binding:"required"`
}
