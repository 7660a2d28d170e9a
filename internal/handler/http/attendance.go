package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hrms-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-attendance-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	// ListAttendance handles GET /attendance?date=YYYY-MM-DD[&department=X]
	ListAttendance(w http.ResponseWriter, r *http.Request)
	// MarkAttendance handles POST /attendance with one entry or a list of entries
	MarkAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ListAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListAttendanceFilter{
		Date: r.URL.Query().Get("date"),
	}
	if department := r.URL.Query().Get("department"); department != "" {
		filter.Department = &department
	}

	results, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// MarkAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, attendance.ErrInvalidStatus) || errors.Is(err, attendance.ErrInvalidPayload) {
			response.HandleError(w, err)
			return
		}
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance marked successfully", results)
}
