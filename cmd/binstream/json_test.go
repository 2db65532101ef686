package main

import (
	"bytes"
	"io/ioutil"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("JSONPrinter", func() {
	var path string
	var buf bytes.Buffer

	dump := func(opts dumpOptions) string {
		buf.Reset()
		Expect(printValues(path, NewJSONPrinter(&buf), opts)).To(Succeed())
		return buf.String()
	}

	BeforeEach(func() {
		file, err := ioutil.TempFile("", "binstream-cmd-test")
		Expect(err).NotTo(HaveOccurred())

		_, err = file.Write([]byte{0x44, 0x33, 0x22, 0x11, 0x01, 0x00, 0x00, 0x00})
		Expect(err).NotTo(HaveOccurred())
		Expect(file.Close()).To(Succeed())

		path = file.Name()
	})

	AfterEach(func() {
		Expect(os.Remove(path)).To(Succeed())
	})

	It("dumps little-endian values until the end of the file", func() {
		Expect(dump(dumpOptions{Type: "u32"})).To(MatchJSON(`{"0": 287454020, "4": 1}`))
	})

	It("dumps big-endian values", func() {
		Expect(dump(dumpOptions{Type: "u32", BigEndian: true})).To(MatchJSON(`{"0": 1144201745, "4": 16777216}`))
	})

	It("honors the offset and the count", func() {
		Expect(dump(dumpOptions{Type: "u16", Offset: 2, Count: 2})).To(MatchJSON(`{"2": 4386, "4": 1}`))
	})

	It("dumps signed values", func() {
		Expect(dump(dumpOptions{Type: "i8", Offset: 3, Count: 1})).To(MatchJSON(`{"3": 17}`))
	})

	It("stops at a partial trailing value", func() {
		Expect(dump(dumpOptions{Type: "u64", Offset: 1})).To(MatchJSON(`{}`))
	})

	When("the count reaches past the end of the file", func() {
		It("fails with an out of bounds error", func() {
			buf.Reset()

			err := printValues(path, NewJSONPrinter(&buf), dumpOptions{Type: "u64", Count: 2})
			Expect(err).To(HaveOccurred())
		})
	})

	When("the type is unknown", func() {
		It("fails", func() {
			buf.Reset()

			err := printValues(path, NewJSONPrinter(&buf), dumpOptions{Type: "u128"})
			Expect(err).To(MatchError(`unsupported type "u128"`))
		})
	})
})

var _ = Describe("SpewPrinter", func() {
	It("prints one annotated line per value", func() {
		var buf bytes.Buffer
		printer := NewSpewPrinter(&buf)

		Expect(printer.Start()).To(Succeed())
		Expect(printer.Value(4, uint32(1))).To(Succeed())
		Expect(printer.End()).To(Succeed())

		Expect(buf.String()).To(HavePrefix("0x00000004: "))
		Expect(buf.String()).To(ContainSubstring("uint32"))
	})
})
