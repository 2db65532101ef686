package binstream

import (
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("FileSource", func() {
	Describe("construction", func() {
		It("fails for a path that does not exist", func() {
			_, err := NewFileSource("no/such/file.bin")
			Expect(err).To(Equal(InvalidPathError{Path: "no/such/file.bin"}))
		})

		It("fails for a path that is not a regular file", func() {
			dir, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())

			_, err = NewFileSource(dir)
			Expect(err).To(Equal(InvalidPathError{Path: dir}))
		})

		It("captures the size once from filesystem metadata", func() {
			path := writeTempFile(testData)
			defer os.Remove(path)

			source, err := NewFileSource(path)
			Expect(err).NotTo(HaveOccurred())

			defer source.Close()

			Expect(source.Size()).To(Equal(int64(len(testData))))

			// Growing the file afterwards must not change the extent.
			file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
			Expect(err).NotTo(HaveOccurred())
			_, err = file.Write([]byte{1, 2, 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(file.Close()).To(Succeed())

			Expect(source.Size()).To(Equal(int64(len(testData))))

			err = source.Read(make([]byte, len(testData)+1))
			Expect(err).To(Equal(OutOfBoundsError{Offset: 0, Length: int64(len(testData)) + 1, Size: int64(len(testData))}))
		})
	})

	Describe("reading", func() {
		var source *FileSource
		var path string

		BeforeEach(func() {
			path = writeTempFile(testData)

			var err error
			source, err = NewFileSource(path)
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			Expect(source.Close()).To(Succeed())
			Expect(os.Remove(path)).To(Succeed())
		})

		It("reads consecutive chunks", func() {
			buf := make([]byte, 8)
			Expect(source.Read(buf)).To(Succeed())
			Expect(buf).To(Equal(testData[0:8]))
			Expect(source.Tell()).To(Equal(int64(8)))
		})

		It("peeks without touching the cursor", func() {
			source.Seek(4)

			buf := make([]byte, 4)
			Expect(source.Peek(buf)).To(Succeed())
			Expect(buf).To(Equal(testData[4:8]))
			Expect(source.Tell()).To(Equal(int64(4)))
		})

		It("does not advance on a failed read", func() {
			source.Seek(source.Size())

			err := source.Read(make([]byte, 1))
			Expect(err).To(Equal(OutOfBoundsError{Offset: source.Size(), Length: 1, Size: source.Size()}))
			Expect(source.Tell()).To(Equal(source.Size()))
		})

		It("closes idempotently", func() {
			Expect(source.Close()).To(Succeed())
			Expect(source.Close()).To(Succeed())
		})
	})
})
