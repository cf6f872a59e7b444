package codecs

// VideoCodec identifies a video stream codec by its ffmpeg token.
type VideoCodec string

const (
	VideoH264  VideoCodec = "h264"
	VideoHEVC  VideoCodec = "hevc"
	VideoMPEG4 VideoCodec = "mpeg4"
	VideoMPEG2 VideoCodec = "mpeg2video"
	VideoMPEG1 VideoCodec = "mpeg1video"
	VideoVP8   VideoCodec = "vp8"
	VideoVP9   VideoCodec = "vp9"
	VideoGIF   VideoCodec = "gif"
)

var videoCodecs = []VideoCodec{
	VideoH264,
	VideoHEVC,
	VideoMPEG4,
	VideoMPEG2,
	VideoMPEG1,
	VideoVP8,
	VideoVP9,
	VideoGIF,
}

// AudioCodec identifies an audio stream codec by its ffmpeg token.
type AudioCodec string

const (
	AudioAAC    AudioCodec = "aac"
	AudioMP3    AudioCodec = "mp3"
	AudioVorbis AudioCodec = "vorbis"
	AudioOpus   AudioCodec = "opus"
	AudioFLAC   AudioCodec = "flac"
	AudioPCM    AudioCodec = "pcm_s16le"
)

var audioCodecs = []AudioCodec{
	AudioAAC,
	AudioMP3,
	AudioVorbis,
	AudioOpus,
	AudioFLAC,
	AudioPCM,
}

// VideoCodecs returns all known video codecs in enumeration order.
func VideoCodecs() []VideoCodec {
	out := make([]VideoCodec, len(videoCodecs))
	copy(out, videoCodecs)
	return out
}

// AudioCodecs returns all known audio codecs in enumeration order.
func AudioCodecs() []AudioCodec {
	out := make([]AudioCodec, len(audioCodecs))
	copy(out, audioCodecs)
	return out
}

// Token returns the ffmpeg name for the codec.
func (c VideoCodec) Token() string {
	return string(c)
}

// Token returns the ffmpeg name for the codec.
func (c AudioCodec) Token() string {
	return string(c)
}

// VideoCodecFromToken resolves an exact codec token from a stream line.
func VideoCodecFromToken(token string) (VideoCodec, bool) {
	for _, codec := range videoCodecs {
		if codec.Token() == token {
			return codec, true
		}
	}
	return "", false
}

// AudioCodecFromToken resolves an exact codec token from a stream line.
func AudioCodecFromToken(token string) (AudioCodec, bool) {
	for _, codec := range audioCodecs {
		if codec.Token() == token {
			return codec, true
		}
	}
	return "", false
}
