package attendance

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklens/workforce-backend-go/internal/config"
	"github.com/worklens/workforce-backend-go/internal/domain/attendance"
	"github.com/worklens/workforce-backend-go/internal/domain/company"
	"github.com/worklens/workforce-backend-go/internal/domain/face"
	"github.com/worklens/workforce-backend-go/internal/domain/location"
	"github.com/worklens/workforce-backend-go/internal/domain/shift"
	"github.com/worklens/workforce-backend-go/internal/pkg/faceid"
)

const (
	testEmployeeID = "01890a5d-ac96-774b-bcce-b30209000001"
	testCompanyID  = "01890a5d-ac96-774b-bcce-b30209000002"

	// 1x1 transparent PNG
	testImageBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="
)

func testAttendanceConfig() config.AttendanceConfig {
	return config.AttendanceConfig{
		GracePeriodMinutes:  15,
		DefaultRadiusMeters: 100,
		FaceMatchTolerance:  0.4,
		FaceMinConfidence:   0.6,
	}
}

func claimsContext(t *testing.T, employeeID, companyID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id":     "01890a5d-ac96-774b-bcce-b30209000003",
		"email":       "employee@example.com",
		"employee_id": employeeID,
		"company_id":  companyID,
		"role":        "employee",
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// --- fakes ---

type fakeRecordRepo struct {
	seq     int
	records []attendance.Record
	worked  bool
}

func (f *fakeRecordRepo) Create(_ context.Context, r attendance.Record) (attendance.Record, error) {
	f.seq++
	r.ID = fmt.Sprintf("record-%d", f.seq)
	r.CreatedAt = time.Now()
	f.records = append(f.records, r)
	return r, nil
}

func (f *fakeRecordRepo) Update(_ context.Context, r attendance.Record) error {
	for i := range f.records {
		if f.records[i].ID == r.ID {
			f.records[i] = r
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func (f *fakeRecordRepo) GetByID(_ context.Context, id string, companyID string) (attendance.Record, error) {
	for i := range f.records {
		if f.records[i].ID == id && f.records[i].CompanyID == companyID {
			return f.records[i], nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeRecordRepo) GetOpenSession(_ context.Context, employeeID string, date time.Time, companyID string) (attendance.Record, error) {
	for i := range f.records {
		r := f.records[i]
		if r.EmployeeID == employeeID && r.CompanyID == companyID && r.Date.Equal(date) && r.CheckOut == nil {
			return r, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeRecordRepo) GetLast(_ context.Context, employeeID string, companyID string) (attendance.Record, error) {
	var last *attendance.Record
	for i := range f.records {
		r := &f.records[i]
		if r.EmployeeID != employeeID || r.CompanyID != companyID {
			continue
		}
		if last == nil || r.CheckIn.After(last.CheckIn) {
			last = r
		}
	}
	if last == nil {
		return attendance.Record{}, attendance.ErrNoAttendanceYet
	}
	return *last, nil
}

func (f *fakeRecordRepo) List(_ context.Context, filter attendance.HistoryFilter, companyID string) ([]attendance.Record, int64, error) {
	var out []attendance.Record
	for i := range f.records {
		r := f.records[i]
		if r.CompanyID != companyID {
			continue
		}
		if filter.EmployeeID != "" && r.EmployeeID != filter.EmployeeID {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRecordRepo) HasWorkedShift(_ context.Context, _ string, _ string, _ time.Time, _ string) (bool, error) {
	return f.worked, nil
}

type fakeLogRepo struct {
	logs []attendance.Log
}

func (f *fakeLogRepo) Create(_ context.Context, l attendance.Log) (attendance.Log, error) {
	l.ID = fmt.Sprintf("log-%d", len(f.logs)+1)
	f.logs = append(f.logs, l)
	return l, nil
}

func (f *fakeLogRepo) ListByEmployee(_ context.Context, employeeID string, companyID string, limit int) ([]attendance.Log, error) {
	var out []attendance.Log
	for i := len(f.logs) - 1; i >= 0 && len(out) < limit; i-- {
		if f.logs[i].EmployeeID == employeeID && f.logs[i].CompanyID == companyID {
			out = append(out, f.logs[i])
		}
	}
	return out, nil
}

func (f *fakeLogRepo) messages() []string {
	var out []string
	for _, l := range f.logs {
		out = append(out, l.Message)
	}
	return out
}

type fakeUserShiftRepo struct {
	active []shift.UserShift
}

func (f *fakeUserShiftRepo) Create(_ context.Context, us shift.UserShift) (shift.UserShift, error) {
	return us, nil
}

func (f *fakeUserShiftRepo) ListActiveByEmployee(_ context.Context, _ string, _ time.Time, _ string) ([]shift.UserShift, error) {
	return f.active, nil
}

func (f *fakeUserShiftRepo) ListByEmployee(_ context.Context, _ string, _ string) ([]shift.UserShift, error) {
	return f.active, nil
}

func (f *fakeUserShiftRepo) ListActiveByAssignment(_ context.Context, _ string, _ string) ([]shift.UserShift, error) {
	return nil, nil
}

func (f *fakeUserShiftRepo) ListActiveByShift(_ context.Context, _ string, _ string) ([]shift.UserShift, error) {
	return nil, nil
}

func (f *fakeUserShiftRepo) DeactivateByAssignment(_ context.Context, _ string, _ time.Time, _ string) error {
	return nil
}

func (f *fakeUserShiftRepo) DeactivateByEmployee(_ context.Context, _ string, _ time.Time, _ string) error {
	return nil
}

type fakeFaceProfileRepo struct {
	profile face.FaceProfile
	err     error
}

func (f *fakeFaceProfileRepo) Upsert(_ context.Context, p face.FaceProfile) (face.FaceProfile, error) {
	f.profile = p
	return p, nil
}

func (f *fakeFaceProfileRepo) GetByEmployee(_ context.Context, _ string, _ string) (face.FaceProfile, error) {
	if f.err != nil {
		return face.FaceProfile{}, f.err
	}
	return f.profile, nil
}

func (f *fakeFaceProfileRepo) Delete(_ context.Context, _ string, _ string) error {
	return nil
}

type fakeLocationRepo struct {
	locations []location.AllowedLocation
}

func (f *fakeLocationRepo) Create(_ context.Context, l location.AllowedLocation) (location.AllowedLocation, error) {
	f.locations = append(f.locations, l)
	return l, nil
}

func (f *fakeLocationRepo) GetByID(_ context.Context, id string, companyID string) (location.AllowedLocation, error) {
	for _, l := range f.locations {
		if l.ID == id && l.CompanyID == companyID {
			return l, nil
		}
	}
	return location.AllowedLocation{}, location.ErrLocationNotFound
}

func (f *fakeLocationRepo) ListByEmployee(_ context.Context, employeeID string, companyID string, activeOnly bool) ([]location.AllowedLocation, error) {
	var out []location.AllowedLocation
	for _, l := range f.locations {
		if l.EmployeeID != employeeID || l.CompanyID != companyID {
			continue
		}
		if activeOnly && !l.IsActive {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLocationRepo) Update(_ context.Context, _ location.AllowedLocation) error {
	return nil
}

func (f *fakeLocationRepo) Delete(_ context.Context, _ string, _ string) error {
	return nil
}

type fakeCompanyRepo struct {
	company company.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, c company.Company) (company.Company, error) {
	return c, nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, _ string) (company.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyRepo) GetByUsername(_ context.Context, _ string) (company.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, _ company.Company) error {
	return nil
}

type fakeEncoder struct {
	distance  float64
	encodeErr error
}

func (f *fakeEncoder) Encode(_ context.Context, _ []byte, _ string) ([]float64, error) {
	if f.encodeErr != nil {
		return nil, f.encodeErr
	}
	return []float64{0.1, 0.2, 0.3}, nil
}

func (f *fakeEncoder) Distance(_, _ []float64) float64 {
	return f.distance
}

type fakeStorage struct {
	uploads []string
}

func (f *fakeStorage) Upload(_ context.Context, _ io.Reader, path string, _ string) (string, error) {
	f.uploads = append(f.uploads, path)
	return path, nil
}

func (f *fakeStorage) Download(_ context.Context, _ string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(nil)), nil
}

func (f *fakeStorage) Delete(_ context.Context, _ string) error {
	return nil
}

func (f *fakeStorage) GetURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "http://localhost:8080/uploads/" + path, nil
}

func (f *fakeStorage) Exists(_ context.Context, _ string) (bool, error) {
	return true, nil
}

// --- fixtures ---

type markFixture struct {
	svc     attendance.AttendanceService
	records *fakeRecordRepo
	logs    *fakeLogRepo
	shifts  *fakeUserShiftRepo
	faces   *fakeFaceProfileRepo
	allowed *fakeLocationRepo
	encoder *fakeEncoder
	storage *fakeStorage
}

func profileWithDefaultFence() face.FaceProfile {
	lat := -6.2
	lon := 106.816666
	return face.FaceProfile{
		ID:                  "profile-1",
		EmployeeID:          testEmployeeID,
		CompanyID:           testCompanyID,
		Encoding:            []float64{0.1, 0.2, 0.3},
		DefaultLatitude:     &lat,
		DefaultLongitude:    &lon,
		DefaultRadiusMeters: 100,
	}
}

func newMarkFixture(profile face.FaceProfile) *markFixture {
	f := &markFixture{
		records: &fakeRecordRepo{},
		logs:    &fakeLogRepo{},
		shifts:  &fakeUserShiftRepo{},
		faces:   &fakeFaceProfileRepo{profile: profile},
		allowed: &fakeLocationRepo{},
		encoder: &fakeEncoder{distance: 0.1},
		storage: &fakeStorage{},
	}
	f.svc = NewAttendanceService(
		nil,
		f.records,
		f.logs,
		f.shifts,
		f.faces,
		f.allowed,
		&fakeCompanyRepo{company: company.Company{ID: testCompanyID, Timezone: "UTC"}},
		f.encoder,
		f.storage,
		testAttendanceConfig(),
	)
	return f
}

func markRequest() attendance.MarkRequest {
	lat := -6.2
	lon := 106.816666
	return attendance.MarkRequest{
		Latitude:    &lat,
		Longitude:   &lon,
		ImageBase64: testImageBase64,
	}
}

// --- tests ---

func TestMark_FirstMarkChecksIn(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	ctx := claimsContext(t, testEmployeeID, testCompanyID)

	result, err := f.svc.Mark(ctx, markRequest())
	require.NoError(t, err)

	assert.Equal(t, attendance.OutcomeCheckedIn, result.Outcome)
	assert.Equal(t, attendance.StatusPresent, result.Status)
	assert.Equal(t, "Checked in successfully", result.Message)
	assert.True(t, result.FaceVerified)
	assert.InDelta(t, 0.9, result.FaceConfidence, 0.0001)
	assert.True(t, result.LocationVerified)
	require.NotNil(t, result.VerifiedLocationName)
	assert.Equal(t, "default", *result.VerifiedLocationName)
	assert.Nil(t, result.MinutesLate)
	assert.Nil(t, result.ShiftID)

	require.Len(t, f.records.records, 1)
	stored := f.records.records[0]
	assert.True(t, stored.IsOpen())
	assert.Equal(t, testEmployeeID, stored.EmployeeID)
	require.NotNil(t, stored.FaceImagePath)

	require.Len(t, f.logs.logs, 1)
	assert.Equal(t, "Checked in successfully", f.logs.logs[0].Message)
	assert.Len(t, f.storage.uploads, 1)
}

func TestMark_SecondMarkChecksOut(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	ctx := claimsContext(t, testEmployeeID, testCompanyID)

	_, err := f.svc.Mark(ctx, markRequest())
	require.NoError(t, err)

	result, err := f.svc.Mark(ctx, markRequest())
	require.NoError(t, err)

	assert.Equal(t, attendance.OutcomeCheckedOut, result.Outcome)
	assert.Equal(t, "Checked out successfully", result.Message)
	require.NotNil(t, result.Record.CheckOut)
	require.NotNil(t, result.Record.WorkDurationMinutes)
	assert.GreaterOrEqual(t, *result.Record.WorkDurationMinutes, 0)

	// Still a single record, now closed.
	require.Len(t, f.records.records, 1)
	assert.False(t, f.records.records[0].IsOpen())
	assert.Contains(t, f.logs.messages(), "Checked out")
}

func TestMark_ForceNewSessionClosesAndReopens(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	ctx := claimsContext(t, testEmployeeID, testCompanyID)

	_, err := f.svc.Mark(ctx, markRequest())
	require.NoError(t, err)

	req := markRequest()
	req.ForceNewSession = true
	result, err := f.svc.Mark(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, attendance.OutcomeCheckedIn, result.Outcome)

	require.Len(t, f.records.records, 2)
	assert.False(t, f.records.records[0].IsOpen())
	assert.True(t, f.records.records[1].IsOpen())
	assert.Contains(t, f.logs.messages(), "Auto-closed by forced new session")
}

func TestMark_LateAgainstShift(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())

	// A shift that started 20 minutes ago, active all week.
	now := time.Now().UTC()
	start := now.Hour()*60 + now.Minute() - 20
	if start < 0 {
		t.Skip("too close to midnight for a stable window")
	}
	end := start + 8*60
	if end >= 24*60 {
		end = 24*60 - 1
	}
	f.shifts.active = []shift.UserShift{{
		ShiftID:  "shift-1",
		IsActive: true,
		Shift: &shift.Shift{
			ID:           "shift-1",
			Name:         "Morning",
			StartMinutes: start,
			EndMinutes:   end,
			Weekdays:     shift.AllWeekdays,
		},
	}}

	ctx := claimsContext(t, testEmployeeID, testCompanyID)
	result, err := f.svc.Mark(ctx, markRequest())
	require.NoError(t, err)

	assert.Equal(t, attendance.OutcomeCheckedIn, result.Outcome)
	assert.Equal(t, attendance.StatusLate, result.Status)
	require.NotNil(t, result.MinutesLate)
	// A minute may tick between fixture setup and the mark.
	assert.GreaterOrEqual(t, *result.MinutesLate, 20)
	assert.LessOrEqual(t, *result.MinutesLate, 21)
	require.NotNil(t, result.ShiftID)
	assert.Equal(t, "shift-1", *result.ShiftID)
	assert.Contains(t, result.Message, "past the grace period")
}

func TestMark_FaceMismatchStillMarks(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	f.encoder.distance = 0.55

	ctx := claimsContext(t, testEmployeeID, testCompanyID)
	result, err := f.svc.Mark(ctx, markRequest())
	require.NoError(t, err)

	assert.Equal(t, attendance.OutcomeCheckedIn, result.Outcome)
	assert.False(t, result.FaceVerified)
	require.Len(t, f.records.records, 1)
	assert.False(t, f.records.records[0].FaceVerified)
}

func TestMark_OutsideFenceStillMarks(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	ctx := claimsContext(t, testEmployeeID, testCompanyID)

	req := markRequest()
	lat := -7.0
	lon := 110.0
	req.Latitude = &lat
	req.Longitude = &lon

	result, err := f.svc.Mark(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, attendance.OutcomeCheckedIn, result.Outcome)
	assert.False(t, result.LocationVerified)
	assert.Nil(t, result.VerifiedLocationName)
	require.NotNil(t, result.DistanceMeters)
	assert.Greater(t, *result.DistanceMeters, 100.0)
}

func TestMark_SpecificAllowedLocation(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	f.allowed.locations = []location.AllowedLocation{{
		ID:           "loc-1",
		EmployeeID:   testEmployeeID,
		CompanyID:    testCompanyID,
		Name:         "Site B",
		Latitude:     -6.3,
		Longitude:    106.9,
		RadiusMeters: 100,
		IsActive:     true,
	}}

	ctx := claimsContext(t, testEmployeeID, testCompanyID)
	req := markRequest()
	req.LocationID = "loc-1"
	lat := -6.3
	lon := 106.9
	req.Latitude = &lat
	req.Longitude = &lon

	result, err := f.svc.Mark(ctx, req)
	require.NoError(t, err)

	assert.True(t, result.LocationVerified)
	require.NotNil(t, result.VerifiedLocationName)
	assert.Equal(t, "Site B", *result.VerifiedLocationName)
}

func TestMark_StaleLocationIDFallsBackToScan(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	f.allowed.locations = []location.AllowedLocation{{
		ID:           "loc-1",
		EmployeeID:   testEmployeeID,
		CompanyID:    testCompanyID,
		Name:         "Site B",
		Latitude:     -6.3,
		Longitude:    106.9,
		RadiusMeters: 100,
		IsActive:     true,
	}}

	ctx := claimsContext(t, testEmployeeID, testCompanyID)
	req := markRequest()
	req.LocationID = "loc-deleted"
	lat := -6.3
	lon := 106.9
	req.Latitude = &lat
	req.Longitude = &lon

	result, err := f.svc.Mark(ctx, req)
	require.NoError(t, err)

	// The unresolvable id does not block; the scan over the employee's
	// active locations still verifies the mark.
	assert.Equal(t, attendance.OutcomeCheckedIn, result.Outcome)
	assert.True(t, result.LocationVerified)
	require.NotNil(t, result.VerifiedLocationName)
	assert.Equal(t, "Site B", *result.VerifiedLocationName)
}

func TestMark_ForeignLocationIDFallsBackToDefaultFence(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	f.allowed.locations = []location.AllowedLocation{{
		ID:           "loc-other",
		EmployeeID:   "someone-else",
		CompanyID:    testCompanyID,
		Name:         "Not yours",
		Latitude:     -7.5,
		Longitude:    111.0,
		RadiusMeters: 100,
		IsActive:     true,
	}}

	ctx := claimsContext(t, testEmployeeID, testCompanyID)
	req := markRequest()
	req.LocationID = "loc-other"

	result, err := f.svc.Mark(ctx, req)
	require.NoError(t, err)

	// Another employee's fence never resolves; the mark verifies against
	// the profile's default geofence instead.
	assert.True(t, result.LocationVerified)
	require.NotNil(t, result.VerifiedLocationName)
	assert.Equal(t, "default", *result.VerifiedLocationName)
}

func TestMark_InactiveLocationIDFallsBack(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	f.allowed.locations = []location.AllowedLocation{{
		ID:           "loc-retired",
		EmployeeID:   testEmployeeID,
		CompanyID:    testCompanyID,
		Name:         "Old site",
		Latitude:     -6.3,
		Longitude:    106.9,
		RadiusMeters: 100,
		IsActive:     false,
	}}

	ctx := claimsContext(t, testEmployeeID, testCompanyID)
	req := markRequest()
	req.LocationID = "loc-retired"

	result, err := f.svc.Mark(ctx, req)
	require.NoError(t, err)

	assert.True(t, result.LocationVerified)
	require.NotNil(t, result.VerifiedLocationName)
	assert.Equal(t, "default", *result.VerifiedLocationName)
}

func TestMark_StaleLocationIDWithNoFencesAtAll(t *testing.T) {
	profile := profileWithDefaultFence()
	profile.DefaultLatitude = nil
	profile.DefaultLongitude = nil
	f := newMarkFixture(profile)

	ctx := claimsContext(t, testEmployeeID, testCompanyID)
	req := markRequest()
	req.LocationID = "loc-deleted"

	// With nothing to fall back to there is nothing to verify against.
	_, err := f.svc.Mark(ctx, req)
	assert.ErrorIs(t, err, location.ErrGeofenceNotConfigured)
}

func TestMark_MissingCoordinates(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	ctx := claimsContext(t, testEmployeeID, testCompanyID)

	req := markRequest()
	req.Latitude = nil

	_, err := f.svc.Mark(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrMissingLocation)
}

func TestMark_GeofenceNotConfigured(t *testing.T) {
	profile := profileWithDefaultFence()
	profile.DefaultLatitude = nil
	profile.DefaultLongitude = nil
	f := newMarkFixture(profile)

	ctx := claimsContext(t, testEmployeeID, testCompanyID)
	_, err := f.svc.Mark(ctx, markRequest())
	assert.ErrorIs(t, err, location.ErrGeofenceNotConfigured)
}

func TestMark_NoBiometricProfile(t *testing.T) {
	f := newMarkFixture(face.FaceProfile{})
	f.faces.err = face.ErrNoBiometricProfile

	ctx := claimsContext(t, testEmployeeID, testCompanyID)
	_, err := f.svc.Mark(ctx, markRequest())
	assert.ErrorIs(t, err, face.ErrNoBiometricProfile)
}

func TestMark_EncoderErrors(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	ctx := claimsContext(t, testEmployeeID, testCompanyID)

	f.encoder.encodeErr = faceid.ErrNoFace
	_, err := f.svc.Mark(ctx, markRequest())
	assert.ErrorIs(t, err, face.ErrNoFaceDetected)

	f.encoder.encodeErr = faceid.ErrUnavailable
	_, err = f.svc.Mark(ctx, markRequest())
	assert.ErrorIs(t, err, face.ErrEncoderUnavailable)
}

func TestMark_DataURLImageAccepted(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	ctx := claimsContext(t, testEmployeeID, testCompanyID)

	req := markRequest()
	req.ImageBase64 = "data:image/png;base64," + testImageBase64

	result, err := f.svc.Mark(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeCheckedIn, result.Outcome)
}

func TestMark_InvalidImageRejected(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	ctx := claimsContext(t, testEmployeeID, testCompanyID)

	req := markRequest()
	req.ImageBase64 = "bm90IGFuIGltYWdl" // "not an image"

	_, err := f.svc.Mark(ctx, req)
	assert.ErrorIs(t, err, face.ErrBiometricProcessing)
}

func TestMark_MissingClaims(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())

	_, err := f.svc.Mark(context.Background(), markRequest())
	assert.Error(t, err)
}

func TestGetLast(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	ctx := claimsContext(t, testEmployeeID, testCompanyID)

	_, err := f.svc.GetLast(ctx)
	assert.ErrorIs(t, err, attendance.ErrNoAttendanceYet)

	_, err = f.svc.Mark(ctx, markRequest())
	require.NoError(t, err)

	last, err := f.svc.GetLast(ctx)
	require.NoError(t, err)
	assert.Equal(t, testEmployeeID, last.EmployeeID)
	assert.True(t, last.IsOpen())
}

func TestGetMyHistory_ScopedToClaims(t *testing.T) {
	f := newMarkFixture(profileWithDefaultFence())
	ctx := claimsContext(t, testEmployeeID, testCompanyID)

	_, err := f.svc.Mark(ctx, markRequest())
	require.NoError(t, err)

	records, total, err := f.svc.GetMyHistory(ctx, attendance.HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1)
	assert.Equal(t, testEmployeeID, records[0].EmployeeID)
}
