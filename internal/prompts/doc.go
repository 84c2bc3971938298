// Package prompts turns reference voice clips into reusable prompt files.
//
// The source tree holds one folder per voice, named "series-中文-name", each
// containing WAV clips named "【emotion】reference text.wav". For every clip
// the runner uploads the audio to the prompt server, waits for the generated
// .pt file, and stores it as "zh-<series>_<name>-<emotion>.pt". A SQLite
// ledger tracks which clips are done so interrupted runs resume cheaply.
package prompts
