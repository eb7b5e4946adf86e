package compare

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

const (
	digestBufferSizeConstant        = 32 * 1024
	digestOpenErrorTemplateConstant = "failed to open file: %w"
	digestReadErrorTemplateConstant = "failed to read file: %w"
)

// fileDigest summarizes file content for the equality fast path.
type fileDigest struct {
	size int64
	sum  uint64
}

// digestFile streams the file through xxhash so identical files are detected
// without buffering their full contents.
func digestFile(path string) (fileDigest, error) {
	file, openError := os.Open(path)
	if openError != nil {
		return fileDigest{}, fmt.Errorf(digestOpenErrorTemplateConstant, openError)
	}
	defer file.Close()

	hasher := xxhash.New()
	buffer := make([]byte, digestBufferSizeConstant)
	var totalSize int64

	for {
		bytesRead, readError := file.Read(buffer)
		if bytesRead > 0 {
			totalSize += int64(bytesRead)
			_, _ = hasher.Write(buffer[:bytesRead])
		}
		if readError == io.EOF {
			break
		}
		if readError != nil {
			return fileDigest{}, fmt.Errorf(digestReadErrorTemplateConstant, readError)
		}
	}

	return fileDigest{size: totalSize, sum: hasher.Sum64()}, nil
}
