package message

var StatusBar = struct {
	FileWritten, FileRenamed, NoFileName string
}{
	FileWritten: "\"%s\" %dL, %dB written",
	FileRenamed: "File name set to \"%s\"",
	NoFileName:  "No file name",
}
