package domain

// Platform identifies the video hosting site a URL belongs to.
type Platform string

const (
	PlatformYouTube  Platform = "youtube"
	PlatformTikTok   Platform = "tiktok"
	PlatformFacebook Platform = "facebook"
	PlatformDouyin   Platform = "douyin"
)

// Support describes how much of the pipeline a platform can run.
type Support int

const (
	// SupportFull means audio can be downloaded and transcribed.
	SupportFull Support = iota

	// SupportMetadataOnly means only page metadata is extracted.
	SupportMetadataOnly
)

func (p Platform) String() string {
	return string(p)
}

// Support reports whether the full audio pipeline or only the
// metadata scraper is available for this platform.
func (p Platform) Support() Support {
	switch p {
	case PlatformFacebook, PlatformDouyin:
		return SupportMetadataOnly
	default:
		return SupportFull
	}
}
