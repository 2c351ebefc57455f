package constants

// Nama permission baku di tabel permissions. Satu role memegang sekumpulan
// permission; effective set user = union dari semua role yang dipegang.
const (
	PermSchoolManage = "school.manage"

	PermStudentView   = "student.view"
	PermStudentManage = "student.manage"

	PermStaffManage = "staff.manage"

	PermAcademicView   = "academic.view"
	PermAcademicManage = "academic.manage"

	PermAdmissionView    = "admission.view"
	PermAdmissionManage  = "admission.manage"
	PermAdmissionApprove = "admission.approve"

	PermAttendanceView   = "attendance.view"
	PermAttendanceManage = "attendance.manage"

	PermFeeView   = "fee.view"
	PermFeeManage = "fee.manage"

	PermSubscriptionManage = "subscription.manage"
)
