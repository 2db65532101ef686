package binstream

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("BufferSource", func() {
	var source *BufferSource

	BeforeEach(func() {
		source = NewBufferSource(testData)
	})

	It("reads consecutive chunks", func() {
		buf := make([]byte, 4)
		Expect(source.Read(buf)).To(Succeed())
		Expect(buf).To(Equal(testData[0:4]))
		Expect(source.Tell()).To(Equal(int64(4)))

		buf = make([]byte, 6)
		Expect(source.Read(buf)).To(Succeed())
		Expect(buf).To(Equal(testData[4:10]))
		Expect(source.Tell()).To(Equal(int64(10)))
	})

	It("peeks without advancing", func() {
		buf := make([]byte, 4)
		Expect(source.Peek(buf)).To(Succeed())
		Expect(buf).To(Equal(testData[0:4]))
		Expect(source.Tell()).To(Equal(int64(0)))
	})

	It("does not advance on a failed read", func() {
		source.Seek(source.Size() - 2)

		err := source.Read(make([]byte, 4))
		Expect(err).To(Equal(OutOfBoundsError{Offset: source.Size() - 2, Length: 4, Size: source.Size()}))
		Expect(source.Tell()).To(Equal(source.Size() - 2))
	})

	It("allows zero-length reads at the end", func() {
		source.Seek(source.Size())
		Expect(source.Read(nil)).To(Succeed())
		Expect(source.Tell()).To(Equal(source.Size()))
	})

	It("drops its data on close", func() {
		Expect(source.Close()).To(Succeed())
		Expect(source.Size()).To(Equal(int64(0)))
	})
})
