package bot

const helpText = `📝 <b>COMMANDS</b>:
* /help – show this help
* /studied – record a studied topic for spaced revision (example: /studied Thermodynamics)
* /due – 📚 list the topics to revise today
* /wallpaper – 🖼 get a random study wallpaper

<b>Admin commands</b>:
* /sort – sweep all channel sets now and report the cursors
* /channels – list the configured channel sets
* /broadcast – copy the replied-to message (or send a text) to every destination channel`

/*
Commands for BotFather:

help - show help
studied - record a studied topic
due - list the topics to revise today
wallpaper - get a random study wallpaper
sort - sweep all channel sets now
channels - list the configured channel sets
broadcast - broadcast to every destination channel
*/
