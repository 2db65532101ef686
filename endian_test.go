package binstream

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("byte order reversal", func() {
	It("is involutive", func() {
		buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
		original := append([]byte(nil), buf...)

		reverseBytes(buf)
		Expect(buf).To(Equal([]byte{8, 7, 6, 5, 4, 3, 2, 1}))

		reverseBytes(buf)
		Expect(buf).To(Equal(original))
	})

	It("reverses each element independently", func() {
		buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}

		reverseElements(buf, 4)
		Expect(buf).To(Equal([]byte{4, 3, 2, 1, 8, 7, 6, 5}))

		reverseElements(buf, 4)
		Expect(buf).To(Equal([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	})

	It("never reverses single-byte elements", func() {
		Expect(needsReverse(true, 1)).To(BeFalse())
		Expect(needsReverse(false, 1)).To(BeFalse())
	})

	It("reverses exactly one of the two orders", func() {
		Expect(needsReverse(true, 4) != needsReverse(false, 4)).To(BeTrue())
	})
})
