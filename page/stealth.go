package page

// stealthScript is installed via Page.addScriptToEvaluateOnNewDocument
// before any page script runs, patching the handful of navigator/window
// properties that naive bot-detection scripts check for. It intentionally
// does not attempt anything beyond that: the hybrid headed-browser
// fallback, not this script, is the module's answer to active anti-bot
// challenges.
const stealthScript = `(() => {
  Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
  Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3, 4, 5] });
  Object.defineProperty(navigator, 'languages', { get: () => ['en-US', 'en'] });
  window.chrome = window.chrome || { runtime: {} };
})();`
