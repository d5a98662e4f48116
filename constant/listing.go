package constant

const (
	ImagesField       = "images"
	MaxImagesPerSale  = 50
	ImageTargetWidth  = 800
	ImageTargetHeight = 600
)

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)
