package file

import (
	domain "github.com/kieeler123/cloud-service/internal/domain/file"
)

func fromDBModel(model *Record) *domain.Record {
	return &domain.Record{
		UUID:    model.UUID,
		OwnerID: model.OwnerID,

		Name:        model.Name,
		SizeBytes:   model.SizeBytes,
		ContentType: model.ContentType,
		StoragePath: model.StoragePath,
		DownloadURL: model.DownloadURL,

		IsTrashed: model.IsTrashed,
		CreatedAt: model.CreatedAt,
		TrashedAt: model.TrashedAt,
	}
}

func fromDBModels(models *Records) domain.Records {
	rs := make(domain.Records, len(*models))
	for idx, m := range *models {
		rs[idx] = fromDBModel(m)
	}

	return rs
}
