package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/config"
	"github.com/lshigami/lms/database"
	"github.com/lshigami/lms/internal/auth"
	adminctrl "github.com/lshigami/lms/internal/controller/admin"
	userctrl "github.com/lshigami/lms/internal/controller/user"
	"github.com/lshigami/lms/internal/importer"
	"github.com/lshigami/lms/internal/mailer"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/lshigami/lms/internal/service"
	"github.com/lshigami/lms/internal/storage"
	"github.com/lshigami/lms/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	t      *testing.T
	engine *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)
	db := testutil.NewTestDB(t)
	cfg := &config.Config{
		Auth: config.Auth{
			JWTSecret: "router-test", JWTExpiration: time.Hour,
			AdminEmail: "admin@lms.test", AdminPassword: "admin-pass",
		},
		Attendance: config.Attendance{WindowDays: 5},
	}
	tokens, err := auth.NewTokenManager(cfg)
	require.NoError(t, err)
	files := storage.NewFromFs(afero.NewMemMapFs())

	users := repository.NewUserRepository(db)
	trainings := repository.NewTrainingRepository(db)
	tests := repository.NewTestRepository(db)
	questions := repository.NewQuestionRepository(db)

	h := Handlers{
		Auth:       userctrl.NewAuthController(service.NewAuthService(users, tokens)),
		Companies:  adminctrl.NewCompanyController(service.NewCompanyService(repository.NewCompanyRepository(db))),
		Courses:    adminctrl.NewCourseController(service.NewCourseService(repository.NewCourseRepository(db))),
		Trainings:  adminctrl.NewTrainingController(service.NewTrainingService(trainings, tests)),
		Users:      adminctrl.NewUserController(service.NewUserService(users, mailer.New(cfg))),
		Roles:      adminctrl.NewRoleController(service.NewRoleService(repository.NewRoleRepository(db))),
		AdminTests: adminctrl.NewAdminTestController(service.NewAdminTestService(tests, questions, trainings, importer.NewRegistry(nil), files, db)),
		Tests: userctrl.NewUserTestController(
			service.NewUserTestService(tests),
			service.NewTestSubmissionService(tests, questions, repository.NewAnswerRepository(db), repository.NewScoreRepository(db), db),
		),
		Mappings:         adminctrl.NewMappingController(service.NewMappingService(repository.NewStudentTrainingRepository(db), trainings, db)),
		Attendance:       adminctrl.NewAttendanceController(service.NewAttendanceService(repository.NewAttendanceRepository(db), db, cfg)),
		Materials:        adminctrl.NewMaterialController(service.NewMaterialService(repository.NewMaterialRepository(db), files)),
		Reports:          adminctrl.NewReportController(service.NewReportService(repository.NewReportRepository(db))),
		Lookups:          userctrl.NewLookupController(service.NewLookupService(repository.NewLookupRepository(db))),
		StudentDocuments: userctrl.NewStudentDocumentController(service.NewStudentDocumentService(repository.NewStudentDocumentRepository(db), files)),
	}

	engine := gin.New()
	Register(engine, tokens, h)

	require.NoError(t, database.SeedAdmin(db, cfg))

	return &testServer{t: t, engine: engine, db: db}
}

// do sends body as JSON and decodes the response into out when out is not nil.
func (s *testServer) do(method, path, token string, body any, out any) int {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	if out != nil {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec.Code
}

// upload sends a multipart form; files maps a file name to its content and
// every file goes under fileField.
func (s *testServer) upload(method, path, token string, fields map[string]string, fileField string, files map[string]string, out any) int {
	s.t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(s.t, w.WriteField(k, v))
	}
	for name, content := range files {
		part, err := w.CreateFormFile(fileField, name)
		require.NoError(s.t, err)
		_, err = io.WriteString(part, content)
		require.NoError(s.t, err)
	}
	require.NoError(s.t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	if out != nil {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec.Code
}

func (s *testServer) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	var resp struct {
		Token string `json:"token"`
	}
	code := s.do(http.MethodPost, "/login", "", gin.H{"email": email, "password": password}, &resp)
	require.Equal(s.t, http.StatusOK, code)
	require.NotEmpty(s.t, resp.Token)
	return resp.Token
}

type idResp struct {
	ID uint `json:"id"`
}

func TestEndToEnd_QuizScore(t *testing.T) {
	s := newTestServer(t)
	admin := s.login("admin@lms.test", "admin-pass")

	var company idResp
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/companies", admin, gin.H{"name": "Acme"}, &company))

	var course idResp
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/courses", admin,
		gin.H{"name": "JS101", "company_id": company.ID}, &course))

	var faculty, student idResp
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/users", admin, gin.H{
		"email": "fac@acme.test", "username": "fac", "password": "fac-pass", "role_id": 2, "company_id": company.ID,
	}, &faculty))
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/users", admin, gin.H{
		"email": "stu@acme.test", "username": "stu", "password": "stu-pass", "role_id": 3, "company_id": company.ID,
	}, &student))

	var training idResp
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/training_details", admin, gin.H{
		"training_name": "JS basics", "course_id": course.ID, "from_date": "2024-01-01", "to_date": "2024-01-31",
		"training_type": "Online", "faculty_id": faculty.ID, "company_id": company.ID,
	}, &training))

	fac := s.login("fac@acme.test", "fac-pass")
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/student_trainings", fac,
		gin.H{"training_id": training.ID, "student_ids": []uint{student.ID}}, nil))

	var created struct {
		TestID        uint `json:"test_id"`
		QuestionCount int  `json:"question_count"`
	}
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/test-master", fac, gin.H{
		"training_id": training.ID, "test_name": "Quiz1", "duration": 20,
		"questions": []gin.H{
			{"question_text": "1+1?", "option_1": "1", "option_2": "2", "option_3": "3", "option_4": "4", "correct_answer": "B"},
			{"question_text": "JS type of []?", "option_1": "array", "option_2": "list", "option_3": "object", "option_4": "tuple", "correct_answer": "object"},
			{"question_text": "=== checks?", "option_1": "value and type", "option_2": "value", "option_3": "type", "option_4": "reference", "correct_answer": "1"},
		},
	}, &created))
	require.Equal(t, 3, created.QuestionCount)

	stu := s.login("stu@acme.test", "stu-pass")

	var details struct {
		Questions []struct {
			ID            uint   `json:"id"`
			CorrectAnswer string `json:"correct_answer"`
		} `json:"questions"`
	}
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, fmt.Sprintf("/test-master/%d", created.TestID), stu, nil, &details))
	require.Len(t, details.Questions, 3)
	for _, q := range details.Questions {
		assert.Empty(t, q.CorrectAnswer)
	}

	// Student cannot write tests.
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/test-master", stu, gin.H{}, nil))

	var result struct {
		Score          int `json:"score"`
		TotalQuestions int `json:"total_questions"`
	}
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/test-answers-score", stu, gin.H{
		"student_id": student.ID, "test_id": created.TestID,
		"answers": []gin.H{
			{"question_id": details.Questions[0].ID, "selected_option": "B"},
			{"question_id": details.Questions[1].ID, "selected_option": "c"},
			{"question_id": details.Questions[2].ID, "selected_option": "D"},
		},
	}, &result))
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 3, result.TotalQuestions)

	var scores []struct {
		Score       int    `json:"score"`
		StudentName string `json:"student_name"`
	}
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, fmt.Sprintf("/test-answers-score/%d", created.TestID), fac, nil, &scores))
	require.Len(t, scores, 1)
	assert.Equal(t, 2, scores[0].Score)
	assert.Equal(t, "stu", scores[0].StudentName)

	var status []struct {
		HasTrainingRecord string `json:"has_training_record"`
	}
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, fmt.Sprintf("/student_trainings/%d/%d", company.ID, training.ID), fac, nil, &status))
	require.Len(t, status, 1)
	assert.Equal(t, model.MappingChecked, status[0].HasTrainingRecord)
}

func TestEndToEnd_DuplicateEmail(t *testing.T) {
	s := newTestServer(t)
	admin := s.login("admin@lms.test", "admin-pass")

	body := gin.H{"email": "dup@acme.test", "username": "dup", "password": "secret1", "role_id": 3}
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/users", admin, body, nil))

	var errResp struct {
		Error string `json:"error"`
	}
	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/users", admin, body, &errResp))
	assert.NotEmpty(t, errResp.Error)

	var count int64
	require.NoError(t, s.db.Model(&model.User{}).Where("email = ?", "dup@acme.test").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestErrorTranslation(t *testing.T) {
	s := newTestServer(t)
	admin := s.login("admin@lms.test", "admin-pass")

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/courses", "", nil, nil))
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/courses", "not-a-token", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/login", "",
		gin.H{"email": "admin@lms.test", "password": "nope"}, nil))

	var errResp struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/courses", admin, gin.H{"description": "no name"}, &errResp))
	assert.Contains(t, errResp.Details, "Name")

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/courses/999", admin, nil, nil))
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/courses/abc", admin, nil, nil))
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodDelete, "/roles/1", admin, nil, nil))
}

type catalog struct {
	company, course, faculty, training uint
}

func (s *testServer) seedCatalog(admin string) catalog {
	s.t.Helper()
	var c catalog
	var resp idResp
	require.Equal(s.t, http.StatusCreated, s.do(http.MethodPost, "/companies", admin, gin.H{"name": "Acme"}, &resp))
	c.company = resp.ID
	require.Equal(s.t, http.StatusCreated, s.do(http.MethodPost, "/courses", admin, gin.H{"name": "JS101", "company_id": c.company}, &resp))
	c.course = resp.ID
	require.Equal(s.t, http.StatusCreated, s.do(http.MethodPost, "/users", admin, gin.H{
		"email": "fac@acme.test", "username": "fac", "password": "fac-pass", "role_id": 2, "company_id": c.company,
	}, &resp))
	c.faculty = resp.ID
	require.Equal(s.t, http.StatusCreated, s.do(http.MethodPost, "/training_details", admin, gin.H{
		"training_name": "JS basics", "course_id": c.course, "from_date": "2024-01-01", "to_date": "2024-01-31",
		"training_type": "Online", "faculty_id": c.faculty, "company_id": c.company,
	}, &resp))
	c.training = resp.ID
	return c
}

func (s *testServer) addStudent(admin string, companyID uint, name string) (uint, string) {
	s.t.Helper()
	var resp idResp
	require.Equal(s.t, http.StatusCreated, s.do(http.MethodPost, "/users", admin, gin.H{
		"email": name + "@acme.test", "username": name, "password": name + "-pass", "role_id": 3, "company_id": companyID,
	}, &resp))
	return resp.ID, s.login(name+"@acme.test", name+"-pass")
}

func TestStudentDocuments_OtherStudentIsForbidden(t *testing.T) {
	s := newTestServer(t)
	admin := s.login("admin@lms.test", "admin-pass")
	c := s.seedCatalog(admin)
	aliceID, alice := s.addStudent(admin, c.company, "alice")
	bobID, bob := s.addStudent(admin, c.company, "bob")

	fields := map[string]string{"student_id": fmt.Sprint(aliceID), "course_id": fmt.Sprint(c.course)}
	assert.Equal(t, http.StatusForbidden, s.upload(http.MethodPost, "/student_documents", bob, fields,
		"documents", map[string]string{"forged.txt": "x"}, nil))

	var docs []struct {
		ID       uint   `json:"id"`
		FilePath string `json:"file_path"`
	}
	require.Equal(t, http.StatusCreated, s.upload(http.MethodPost, "/student_documents", alice, fields,
		"documents", map[string]string{"a-private.txt": "student A secret"}, &docs))
	require.Len(t, docs, 1)
	id := docs[0].ID

	assert.Equal(t, http.StatusForbidden, s.get(fmt.Sprintf("/student_documents/file/%d", id), bob).Code)
	assert.Equal(t, http.StatusForbidden, s.get(fmt.Sprintf("/student_documents/%d", id), bob).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPut, fmt.Sprintf("/student_documents/%d", id), bob,
		gin.H{"student_id": bobID, "course_id": c.course, "document_name": "mine.txt"}, nil))
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodDelete, fmt.Sprintf("/student_documents/%d", id), bob, nil, nil))

	var listed []idResp
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/student_documents", bob, nil, &listed))
	assert.Empty(t, listed)

	rec := s.get(fmt.Sprintf("/student_documents/file/%d", id), alice)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "student A secret", rec.Body.String())

	// file_path is not part of the update body, so the stored path stays put.
	var updated struct {
		FilePath string `json:"file_path"`
	}
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, fmt.Sprintf("/student_documents/%d", id), alice,
		gin.H{"student_id": aliceID, "course_id": c.course, "document_name": "final.txt", "file_path": "tests/other.csv"}, &updated))
	assert.Equal(t, docs[0].FilePath, updated.FilePath)

	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, fmt.Sprintf("/student_documents/%d", id), alice, nil, nil))
}

func TestCreateTest_Multipart(t *testing.T) {
	s := newTestServer(t)
	admin := s.login("admin@lms.test", "admin-pass")
	c := s.seedCatalog(admin)
	fac := s.login("fac@acme.test", "fac-pass")

	fields := func(name string) map[string]string {
		return map[string]string{"training_id": fmt.Sprint(c.training), "test_name": name, "duration": "15"}
	}
	var created struct {
		TestID        uint `json:"test_id"`
		QuestionCount int  `json:"question_count"`
	}

	csv := "question,option_1,option_2,option_3,option_4,answer\n" +
		"2+2?,3,4,5,6,b\n" +
		"Largest planet?,Mars,Venus,Jupiter,Earth,Jupiter\n"
	require.Equal(t, http.StatusCreated, s.upload(http.MethodPost, "/test-master", fac, fields("From file"),
		"file", map[string]string{"quiz.csv": csv}, &created))
	assert.Equal(t, 2, created.QuestionCount)

	form := fields("From form")
	form["questions"] = `[{"question_text":"1+1?","option_1":"1","option_2":"2","option_3":"3","option_4":"4","correct_answer":"B"}]`
	require.Equal(t, http.StatusCreated, s.upload(http.MethodPost, "/test-master", fac, form, "", nil, &created))
	assert.Equal(t, 1, created.QuestionCount)

	blank := fields("Blank")
	blank["questions"] = `[{"correct_answer":"A"}]`
	var errResp struct {
		Details map[string]string `json:"details"`
	}
	require.Equal(t, http.StatusBadRequest, s.upload(http.MethodPost, "/test-master", fac, blank, "", nil, &errResp))
	assert.Contains(t, errResp.Details, "QuestionText")

	unsupported := fields("Text file")
	assert.Equal(t, http.StatusBadRequest, s.upload(http.MethodPost, "/test-master", fac, unsupported,
		"file", map[string]string{"quiz.txt": "2+2?"}, nil))

	var count int64
	require.NoError(t, s.db.Model(&model.TestMaster{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
