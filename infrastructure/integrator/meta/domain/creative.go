package metadomain

// CreativeRef é a referência de criativo retornada no campo "creative" de um Ad
type CreativeRef struct {
	ID string `json:"id"`
}

// Ad é o objeto retornado pela busca em lote de anúncios (fields=creative)
type Ad struct {
	ID       string       `json:"id"`
	Creative *CreativeRef `json:"creative"`
}

type VideoData struct {
	ImageURL string `json:"image_url"`
	Picture  string `json:"picture"`
}

type LinkData struct {
	Picture  string `json:"picture"`
	ImageURL string `json:"image_url"`
}

// ObjectStorySpec é a especificação estruturada de um criativo de vídeo ou link
type ObjectStorySpec struct {
	VideoData *VideoData `json:"video_data"`
	LinkData  *LinkData  `json:"link_data"`
}

// AdCreative é o objeto retornado pela busca em lote de criativos
type AdCreative struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	ThumbnailURL     string           `json:"thumbnail_url"`
	ImageURL         string           `json:"image_url"`
	ObjectStorySpec  *ObjectStorySpec `json:"object_story_spec"`
	Body             string           `json:"body"`
	Title            string           `json:"title"`
	CallToActionType string           `json:"call_to_action_type"`
}

// ResolveThumbnail aplica a cadeia de fallback para localizar uma thumbnail
// utilizável: thumbnail_url -> image_url -> video_data (image_url, picture)
// -> link_data (picture, image_url) -> string vazia.
func (c *AdCreative) ResolveThumbnail() string {
	if c.ThumbnailURL != "" {
		return c.ThumbnailURL
	}
	if c.ImageURL != "" {
		return c.ImageURL
	}

	spec := c.ObjectStorySpec
	if spec == nil {
		return ""
	}

	if spec.VideoData != nil {
		if spec.VideoData.ImageURL != "" {
			return spec.VideoData.ImageURL
		}
		return spec.VideoData.Picture
	}

	if spec.LinkData != nil {
		if spec.LinkData.Picture != "" {
			return spec.LinkData.Picture
		}
		return spec.LinkData.ImageURL
	}

	return ""
}
