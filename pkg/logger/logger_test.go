package logger_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/printpdf/pkg/logger"
)

var _ = Describe("Logger", func() {
	var (
		buf *bytes.Buffer
		log *logger.Logger
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		log = logger.New(
			logger.WithOutput(buf),
			logger.WithPrefix("[test] "),
			logger.WithFlags(0),
		)
	})

	It("should always write info and warnings", func() {
		log.Info("printing %s", "a.pdf")
		log.Warn("page %d left blank", 3)

		Expect(buf.String()).To(Equal("[test] INFO: printing a.pdf\n[test] WARN: page 3 left blank\n"))
	})

	It("should hide debug output unless verbose", func() {
		log.Debug("hidden")
		Expect(buf.String()).To(BeEmpty())

		log.SetVerbose(true)
		log.Debug("shown")
		Expect(buf.String()).To(ContainSubstring("DEBUG: shown"))
	})

	It("should only trace at trace level", func() {
		log.SetVerbose(true)
		log.Trace("hidden")
		Expect(buf.String()).To(BeEmpty())

		log.SetLevel(logger.LevelTrace)
		log.Trace("shown")
		Expect(buf.String()).To(ContainSubstring("TRACE: shown"))
	})

	It("should call the exit function on fatal", func() {
		code := -1
		log = logger.New(
			logger.WithOutput(buf),
			logger.WithFlags(0),
			logger.WithExitFunc(func(c int) { code = c }),
		)

		log.Fatal("no printer")

		Expect(code).To(Equal(1))
		Expect(buf.String()).To(Equal("FATAL: no printer\n"))
	})
})
