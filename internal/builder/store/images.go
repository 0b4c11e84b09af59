package store

import "dashbuilder/internal/builder/model"

// upsertImage keeps at most one image per alignment: an occupied slot only
// gets its src replaced, a free slot gets a new image with req.ID appended.
func upsertImage(images []model.Image, req model.AddImageReq) []model.Image {
	out := make([]model.Image, len(images), len(images)+1)
	copy(out, images)
	if idx := model.ImageIndex(images, req.Alignment); idx >= 0 {
		out[idx].Src = req.Src
		return out
	}
	return append(out, model.Image{ID: req.ID, Src: req.Src, Alignment: req.Alignment})
}

func deleteImage(images []model.Image, alignment string) []model.Image {
	idx := model.ImageIndex(images, alignment)
	if idx < 0 {
		return images
	}
	out := make([]model.Image, 0, len(images)-1)
	out = append(out, images[:idx]...)
	return append(out, images[idx+1:]...)
}
