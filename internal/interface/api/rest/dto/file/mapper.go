package file

import (
	domain "github.com/kieeler123/cloud-service/internal/domain/file"
)

func ToResponseFile(fDomain domain.Record) File {
	var f = File{
		UUID:        fDomain.UUID,
		Name:        fDomain.Name,
		SizeBytes:   fDomain.SizeBytes,
		ContentType: fDomain.ContentType,
		DownloadURL: fDomain.DownloadURL,
		IsTrashed:   fDomain.IsTrashed,
		CreatedAt:   fDomain.CreatedAt,
		TrashedAt:   fDomain.TrashedAt,
	}

	return f
}

func ToResponseFiles(fsDomain domain.Records) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}
