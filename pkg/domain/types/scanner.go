package types

import "log/slog"

// ScannerToken authenticates requests to the scanning engine API.
type ScannerToken string

func (x ScannerToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x ScannerToken) String() string {
	return "***********"
}
