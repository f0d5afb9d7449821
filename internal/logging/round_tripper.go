package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// RoundTripper wraps next so that every outgoing request is logged with its
// method, path, status and duration. A LogData found on the request context
// receives the same fields.
func RoundTripper(loggingName string, log *logrus.Logger, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		logData := GetLogData(req.Context())
		if logData == nil {
			logData = NewLogData(log)
		}

		logData.AddData("method", req.Method)
		logData.AddData("path", req.URL.Path)
		if requestID := req.Header.Get("X-Request-Id"); requestID != "" {
			logData.AddData("requestID", requestID)
		}

		log.Debugf("Transport.%v.Start", loggingName)

		endTimer := logData.AddTiming("durationMs")
		resp, err := next.RoundTrip(req)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Transport.%v.Error", loggingName)
			return nil, err
		}

		logData.AddData("status", resp.StatusCode)
		logData.Log().Infof("Transport.%v.Complete", loggingName)
		return resp, nil
	})
}
