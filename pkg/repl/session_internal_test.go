package repl

import (
	"bytes"
	"context"
	"errors"
	"io"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/akhildatla/rax/pkg/command"
	"github.com/akhildatla/rax/pkg/register"
)

var _ = Describe("Session", func() {
	var (
		mockCtrl *gomock.Controller
		src      *MockLineSource
		out      *bytes.Buffer
		errOut   *bytes.Buffer
		session  *Session
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		src = NewMockLineSource(mockCtrl)
		out = new(bytes.Buffer)
		errOut = new(bytes.Buffer)
		session = New(register.New(0, command.Decimal), src, out, errOut)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	feed := func(lines ...string) {
		calls := make([]*gomock.Call, 0, len(lines))
		for _, l := range lines {
			calls = append(calls, src.EXPECT().ReadLine().Return(l, nil))
		}
		gomock.InOrder(calls...)
	}

	It("should stop reading after quit", func() {
		feed("+\n", "quit\n")

		Expect(session.Run(context.Background())).To(Succeed())
		Expect(out.String()).To(Equal("[0] [1] "))
		Expect(session.Machine().Value()).To(Equal(int64(1)))
	})

	It("should treat end of input as fatal", func() {
		gomock.InOrder(
			src.EXPECT().ReadLine().Return("$ 7\n", nil),
			src.EXPECT().ReadLine().Return("", io.EOF),
		)

		err := session.Run(context.Background())
		Expect(errors.Is(err, ErrInput)).To(BeTrue())
		Expect(session.Machine().Value()).To(Equal(int64(7)))
	})

	It("should treat a read failure as fatal", func() {
		src.EXPECT().ReadLine().Return("", errors.New("device gone"))

		err := session.Run(context.Background())
		Expect(err).To(MatchError(ContainSubstring("device gone")))
		Expect(errors.Is(err, ErrInput)).To(BeTrue())
	})

	It("should recover from an overlong line", func() {
		gomock.InOrder(
			src.EXPECT().ReadLine().Return("", ErrLineTooLong),
			src.EXPECT().ReadLine().Return("q\n", nil),
		)

		Expect(session.Run(context.Background())).To(Succeed())
		Expect(errOut.String()).To(ContainSubstring("Invalid syntax"))
		Expect(out.String()).To(Equal("[0] [0] "))
	})

	It("should keep going after errors", func() {
		feed("hello\n", "+5x\n", "$ 0x10000000000000000\n", "- 3\n", "e\n")

		Expect(session.Run(context.Background())).To(Succeed())
		Expect(errOut.String()).To(Equal(
			"[ Error ] Invalid syntax, type '?' for help\n" +
				"[ Error ] Invalid syntax, type '?' for help\n" +
				"[ Error ] Value out of range\n"))
		Expect(session.Machine().Value()).To(Equal(int64(-3)))
	})

	It("should switch display modes", func() {
		feed("$ 8\n", "o\n", "Hexadecimal\n", "DENARY\n", "q\n")

		Expect(session.Run(context.Background())).To(Succeed())
		Expect(out.String()).To(Equal("[0] [8] [010] [0x8] [8] "))
	})

	It("should print help and leave the register alone", func() {
		feed("$ 2\n", "help\n", "q\n")

		Expect(session.Run(context.Background())).To(Succeed())
		Expect(out.String()).To(ContainSubstring("[ Help ]"))
		Expect(out.String()).To(HaveSuffix("[2] "))
		Expect(errOut.String()).To(BeEmpty())
	})

	It("should record into the trace when one is configured", func() {
		tr := NewTrace()
		session = NewWithOptions(register.New(0, command.Decimal), src, out, errOut,
			Options{Trace: tr, Color: true})
		feed("?\n", "nope\n", "q\n")

		Expect(session.Run(context.Background())).To(Succeed())
		Expect(tr.Len()).To(Equal(3))
		Expect(errOut.String()).To(HavePrefix("\033[31m"))
	})
})
