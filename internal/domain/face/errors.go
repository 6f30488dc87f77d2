package face

import (
	"errors"
	"fmt"
)

// Face domain errors
var (
	ErrNoBiometricProfile = errors.New("no face profile registered for this employee")

	// ErrBiometricProcessing is the family root for encoder failures; the
	// three variants below wrap it so callers can match with errors.Is.
	ErrBiometricProcessing = errors.New("biometric processing failed")
	ErrNoFaceDetected      = fmt.Errorf("%w: no face detected in the provided image", ErrBiometricProcessing)
	ErrEncodingFailed      = fmt.Errorf("%w: failed to encode face image", ErrBiometricProcessing)
	ErrEncoderUnavailable  = fmt.Errorf("%w: face encoding service is unavailable", ErrBiometricProcessing)
)
