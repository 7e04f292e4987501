package zapsink

import (
	"io"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/catlog"
)

func newBenchZap() *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:     "",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zapcore.DebugLevel)
	return zap.New(core)
}

func BenchmarkZapSink_Write(b *testing.B) {
	s := New(newBenchZap())
	rec := catlog.Record{
		At:        time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC),
		Subsystem: "com.example.app",
		Category:  "UI",
		Severity:  catlog.SeverityInfo,
		Message:   "bench",
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Write(rec)
	}
}
