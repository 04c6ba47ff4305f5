package storage

type FileStore interface {
	UploadFile(file []byte, filename string, folder string) (string, error)
}
